package scoring

import "testing"

func TestRacePoints_FullGridLinear(t *testing.T) {
	for position := 1; position <= 26; position++ {
		if got := RacePoints(position); got+position != 27 {
			t.Fatalf("race points at position %d: got=%d, want sum with position to be 27", position, got)
		}
	}
}

func TestRacePoints_OutOfRange(t *testing.T) {
	for _, position := range []int{-5, -1, 0, 27, 30, 100} {
		if got := RacePoints(position); got != 0 {
			t.Fatalf("race points at position %d: got=%d want=0", position, got)
		}
	}
}

func TestQualifyingPoints_TopSixOnly(t *testing.T) {
	for position := 1; position <= 6; position++ {
		if got := QualifyingPoints(position); got+position != 7 {
			t.Fatalf("qualifying points at position %d: got=%d, want sum with position to be 7", position, got)
		}
	}
	for _, position := range []int{-1, 0, 7, 8, 26} {
		if got := QualifyingPoints(position); got != 0 {
			t.Fatalf("qualifying points at position %d: got=%d want=0", position, got)
		}
	}
}
