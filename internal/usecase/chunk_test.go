package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestWriteChunked_SplitsAtBound(t *testing.T) {
	records := make([]int, 1201)
	var sizes []int

	report := writeChunked(t.Context(), records, 500, func(_ context.Context, chunk []int) error {
		sizes = append(sizes, len(chunk))
		return nil
	})

	if report.Chunks != 3 || report.Records != 1201 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(sizes) != 3 || sizes[0] != 500 || sizes[1] != 500 || sizes[2] != 201 {
		t.Fatalf("unexpected chunk sizes: %v", sizes)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("expected clean report, got %v", err)
	}
}

func TestWriteChunked_EmptyInput(t *testing.T) {
	calls := 0
	report := writeChunked(t.Context(), nil, 500, func(_ context.Context, _ []int) error {
		calls++
		return nil
	})

	if calls != 0 || report.Chunks != 0 || report.Err() != nil {
		t.Fatalf("empty input should write nothing, got %+v", report)
	}
}

func TestWriteChunked_PartialFailureKeepsGoing(t *testing.T) {
	records := make([]int, 1100)
	boom := errors.New("store unavailable")
	call := 0

	report := writeChunked(t.Context(), records, 500, func(_ context.Context, _ []int) error {
		call++
		if call == 2 {
			return boom
		}
		return nil
	})

	if call != 3 {
		t.Fatalf("a failed chunk must not stop later chunks, wrote %d", call)
	}
	if len(report.Failed) != 1 || report.Failed[0].Index != 1 || report.Failed[0].Records != 500 {
		t.Fatalf("unexpected failure detail: %+v", report.Failed)
	}
	if report.FailedRecords() != 500 {
		t.Fatalf("unexpected failed record count: %d", report.FailedRecords())
	}

	err := report.Err()
	if !errors.Is(err, ErrPartialCommit) {
		t.Fatalf("expected ErrPartialCommit, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected the cause to survive wrapping, got %v", err)
	}
}
