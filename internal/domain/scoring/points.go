package scoring

// Point tables are fixed for the season and recorded against each computed
// document via the engine version tag.

// RacePoints awards the whole grid linearly: 1st place earns 26 points down
// to 1 point for 26th. Positions outside 1..26 (including did-not-finish,
// which is absence from the order rather than a position) earn nothing.
func RacePoints(position int) int {
	if position < 1 || position > 26 {
		return 0
	}
	return 27 - position
}

// QualifyingPoints awards only the top six grid slots: 1st earns 6 points
// down to 1 point for 6th. Qualifying stays a secondary signal next to the
// full-grid race tables.
func QualifyingPoints(position int) int {
	if position < 1 || position > 6 {
		return 0
	}
	return 7 - position
}
