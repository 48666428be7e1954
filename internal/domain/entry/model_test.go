package entry

import "testing"

func TestExtractDriverIDs_CanonicalField(t *testing.T) {
	doc := map[string]any{"driverIds": []any{"d1", "d2", "d3"}}

	got := ExtractDriverIDs(doc)
	if len(got) != 3 || got[0] != "d1" || got[2] != "d3" {
		t.Fatalf("unexpected roster: %v", got)
	}
}

func TestExtractDriverIDs_LegacyAliases(t *testing.T) {
	cases := map[string]map[string]any{
		"drivers": {"drivers": []string{"d1", "d2"}},
		"team":    {"team": []any{"d1", "d2"}},
		"picks":   {"picks": []string{"d1"}},
	}

	for alias, doc := range cases {
		got := ExtractDriverIDs(doc)
		if len(got) == 0 {
			t.Fatalf("alias %q: expected roster, got none", alias)
		}
	}
}

func TestExtractDriverIDs_MissingOrMalformed(t *testing.T) {
	if got := ExtractDriverIDs(map[string]any{}); got != nil {
		t.Fatalf("missing field should yield nil, got %v", got)
	}
	if got := ExtractDriverIDs(map[string]any{"driverIds": "d1,d2"}); got != nil {
		t.Fatalf("scalar field should yield nil, got %v", got)
	}
	if got := ExtractDriverIDs(map[string]any{"drivers": []any{"d1", 7}}); got != nil {
		t.Fatalf("mixed-type list should yield nil, got %v", got)
	}
}

func TestExtractDriverIDs_CanonicalWinsOverAlias(t *testing.T) {
	doc := map[string]any{
		"driverIds": []string{"d1", "d2", "d3"},
		"drivers":   []string{"old1", "old2", "old3"},
	}

	got := ExtractDriverIDs(doc)
	if got[0] != "d1" {
		t.Fatalf("expected canonical field to win, got %v", got)
	}
}
