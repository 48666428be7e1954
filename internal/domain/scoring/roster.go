package scoring

const (
	MinRosterSize = 3
	MaxRosterSize = 6
)

// ValidateRoster checks a submitted roster and returns the deduplicated
// driver list, preserving submission order. A roster outside the 3..6 size
// bound comes back empty: an invalid roster is data that scores zero for
// every session, never a fault.
func ValidateRoster(driverIDs []string) []string {
	if len(driverIDs) < MinRosterSize || len(driverIDs) > MaxRosterSize {
		return nil
	}

	seen := make(map[string]struct{}, len(driverIDs))
	out := make([]string, 0, len(driverIDs))
	for _, id := range driverIDs {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
