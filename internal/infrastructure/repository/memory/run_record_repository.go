package memory

import (
	"context"
	"sync"

	"github.com/btcc-fantasy/league-engine/internal/domain/audit"
)

type RunRecordRepository struct {
	mu    sync.RWMutex
	items []audit.Record
}

func NewRunRecordRepository() *RunRecordRepository {
	return &RunRecordRepository{}
}

func (r *RunRecordRepository) Append(_ context.Context, record audit.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, cloneRunRecord(record))

	return nil
}

func (r *RunRecordRepository) ListRecent(_ context.Context, limit int) ([]audit.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.items) {
		limit = len(r.items)
	}

	out := make([]audit.Record, 0, limit)
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, cloneRunRecord(r.items[i]))
	}

	return out, nil
}

func cloneRunRecord(record audit.Record) audit.Record {
	out := record
	if record.ResultsUpdatedAt != nil {
		at := *record.ResultsUpdatedAt
		out.ResultsUpdatedAt = &at
	}
	return out
}
