package standing

import "time"

// PlayerStanding is one player's season-cumulative total through a chosen
// event. Rebuilds fully replace the season's set so corrections to early
// events always propagate.
type PlayerStanding struct {
	SeasonID    string
	PlayerID    string
	DisplayName string
	Total       int

	ThroughEventID  string
	ThroughSequence int
	// EventIDs lists the events folded into Total, in sequence order.
	EventIDs []string

	ComputedAt    time.Time
	EngineVersion string
}

// TeamMember is one player's contribution to a fantasy-team total.
type TeamMember struct {
	PlayerID    string
	DisplayName string
	Total       int
}

// TeamStanding groups the season's player standings under a fantasy team.
// Members are sorted by individual total descending.
type TeamStanding struct {
	SeasonID string
	TeamID   string
	TeamName string
	Total    int
	Members  []TeamMember

	ThroughEventID  string
	ThroughSequence int

	ComputedAt    time.Time
	EngineVersion string
}

// UnassignedTeamID buckets players whose profile resolves to no team.
const UnassignedTeamID = "unassigned"
