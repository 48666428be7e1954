package scoring

import (
	"reflect"
	"testing"
)

func TestValidateRoster_SizeBounds(t *testing.T) {
	if got := ValidateRoster([]string{"d1", "d2"}); len(got) != 0 {
		t.Fatalf("size-2 roster must validate to empty, got %v", got)
	}
	if got := ValidateRoster([]string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"}); len(got) != 0 {
		t.Fatalf("size-7 roster must validate to empty, got %v", got)
	}
	if got := ValidateRoster(nil); len(got) != 0 {
		t.Fatalf("missing roster must validate to empty, got %v", got)
	}
}

func TestValidateRoster_ValidSizes(t *testing.T) {
	for size := MinRosterSize; size <= MaxRosterSize; size++ {
		roster := make([]string, 0, size)
		for i := 0; i < size; i++ {
			roster = append(roster, string(rune('a'+i)))
		}
		got := ValidateRoster(roster)
		if !reflect.DeepEqual(got, roster) {
			t.Fatalf("size-%d roster: got %v want %v", size, got, roster)
		}
	}
}

func TestValidateRoster_Deduplicates(t *testing.T) {
	got := ValidateRoster([]string{"d1", "d2", "d1", "d3"})
	want := []string{"d1", "d2", "d3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("deduplicated roster: got %v want %v", got, want)
	}
}

func TestValidateRoster_DropsEmptyIDs(t *testing.T) {
	got := ValidateRoster([]string{"d1", "", "d2"})
	want := []string{"d1", "d2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("roster with blank id: got %v want %v", got, want)
	}
}
