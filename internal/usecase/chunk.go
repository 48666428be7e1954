package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrPartialCommit marks replace operations where at least one write chunk
// failed. A rerun is always the correct recovery: every run fully replaces
// its output set, so retries cannot mix records from different runs.
var ErrPartialCommit = errors.New("partial commit")

type ChunkFailure struct {
	Index   int
	Records int
	Err     error
}

// CommitReport describes the outcome of one chunked replace.
type CommitReport struct {
	Chunks  int
	Records int
	Failed  []ChunkFailure
}

func (r CommitReport) FailedRecords() int {
	total := 0
	for _, failure := range r.Failed {
		total += failure.Records
	}
	return total
}

// Err folds the chunk failures into a single error carrying which chunks
// and how many records failed, marked with ErrPartialCommit. Nil when every
// chunk committed.
func (r CommitReport) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}

	var combined error
	for _, failure := range r.Failed {
		combined = errors.CombineErrors(combined, errors.Wrapf(
			failure.Err, "chunk %d of %d (%d records)", failure.Index+1, r.Chunks, failure.Records,
		))
	}
	combined = errors.Mark(combined, ErrPartialCommit)

	return errors.Wrapf(combined, "%d of %d chunks failed (%d of %d records)",
		len(r.Failed), r.Chunks, r.FailedRecords(), r.Records)
}

// writeChunked splits records at the store's atomic write bound and commits
// each chunk independently. A failed chunk does not stop later chunks: the
// operator gets the full damage report and reruns.
func writeChunked[T any](ctx context.Context, records []T, chunkSize int, write func(context.Context, []T) error) CommitReport {
	if chunkSize <= 0 {
		chunkSize = DefaultWriteChunkSize
	}

	report := CommitReport{Records: len(records)}
	for start := 0; start < len(records); start += chunkSize {
		end := min(start+chunkSize, len(records))
		chunk := records[start:end]

		index := report.Chunks
		report.Chunks++
		if err := write(ctx, chunk); err != nil {
			report.Failed = append(report.Failed, ChunkFailure{Index: index, Records: len(chunk), Err: err})
		}
	}

	return report
}
