package entry

import "time"

// Entry is one player's roster submission for one event.
type Entry struct {
	EventID     string
	PlayerID    string
	DisplayName string
	DriverIDs   []string
	SubmittedAt time.Time
}

// driverIDAliases are the historical field names a roster was stored under
// before the schema settled on driverIds. ExtractDriverIDs keeps old exports
// importable; live reads use the canonical field only.
var driverIDAliases = []string{"driverIds", "drivers", "team", "picks"}

// ExtractDriverIDs resolves the roster from a raw entry document, trying the
// canonical field first and then the legacy aliases. A missing or non-list
// field yields an empty roster, never an error.
func ExtractDriverIDs(doc map[string]any) []string {
	for _, key := range driverIDAliases {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		ids := toStringSlice(raw)
		if ids != nil {
			return ids
		}
	}
	return nil
}

func toStringSlice(raw any) []string {
	switch values := raw.(type) {
	case []string:
		return append([]string(nil), values...)
	case []any:
		out := make([]string, 0, len(values))
		for _, value := range values {
			s, ok := value.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		return nil
	}
}
