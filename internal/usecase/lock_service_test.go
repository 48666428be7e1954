package usecase

import (
	"errors"
	"testing"

	"github.com/btcc-fantasy/league-engine/internal/domain/event"
	"github.com/btcc-fantasy/league-engine/internal/infrastructure/repository/memory"
	"github.com/btcc-fantasy/league-engine/internal/platform/id"
	"github.com/btcc-fantasy/league-engine/internal/platform/logging"
)

func newLockService() (*LockService, *memory.EventRepository, *memory.RunRecordRepository) {
	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	auditRepo := memory.NewRunRecordRepository()
	svc := NewLockService(eventRepo, auditRepo, id.NewRandomGenerator(), logging.NewNop())
	return svc, eventRepo, auditRepo
}

func TestLockService_Lock_MarksEventComplete(t *testing.T) {
	svc, _, auditRepo := newLockService()

	evt, err := svc.Lock(t.Context(), memory.EventIDDonington, "ops")
	if err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	if !evt.ResultsLocked {
		t.Fatal("event should be locked")
	}
	if evt.Status != event.StatusComplete {
		t.Fatalf("unexpected status: %s", evt.Status)
	}
	if evt.LockedBy != "ops" || evt.LockedAt == nil {
		t.Fatalf("lock attribution missing: %+v", evt)
	}

	records, err := auditRepo.ListRecent(t.Context(), 1)
	if err != nil {
		t.Fatalf("list run records failed: %v", err)
	}
	if len(records) != 1 || records[0].Kind != "lock" {
		t.Fatalf("expected a lock run record, got %+v", records)
	}
}

func TestLockService_Lock_RejectsAlreadyLocked(t *testing.T) {
	svc, _, _ := newLockService()

	_, err := svc.Lock(t.Context(), memory.EventIDBrandsHatchIndy, "ops")
	if !errors.Is(err, ErrAlreadyLocked) {
		t.Fatalf("expected ErrAlreadyLocked, got %v", err)
	}
}

func TestLockService_Lock_RequiresActor(t *testing.T) {
	svc, _, _ := newLockService()

	_, err := svc.Lock(t.Context(), memory.EventIDDonington, "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLockService_Unlock_RequiresReason(t *testing.T) {
	svc, _, _ := newLockService()

	_, err := svc.Unlock(t.Context(), memory.EventIDBrandsHatchIndy, "ops", "")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLockService_Unlock_RejectsUnlockedEvent(t *testing.T) {
	svc, _, _ := newLockService()

	_, err := svc.Unlock(t.Context(), memory.EventIDDonington, "ops", "timing correction")
	if !errors.Is(err, ErrEventNotLocked) {
		t.Fatalf("expected ErrEventNotLocked, got %v", err)
	}
}

func TestLockService_Unlock_KeepsStatusAndRecordsReason(t *testing.T) {
	svc, _, auditRepo := newLockService()

	evt, err := svc.Unlock(t.Context(), memory.EventIDBrandsHatchIndy, "ops", "race 3 stewards decision")
	if err != nil {
		t.Fatalf("unlock failed: %v", err)
	}
	if evt.ResultsLocked {
		t.Fatal("event should be unlocked")
	}
	if evt.Status != event.StatusComplete {
		t.Fatalf("unlock must not change status, got %s", evt.Status)
	}
	if evt.UnlockReason != "race 3 stewards decision" || evt.UnlockedBy != "ops" {
		t.Fatalf("unlock attribution missing: %+v", evt)
	}

	records, err := auditRepo.ListRecent(t.Context(), 1)
	if err != nil {
		t.Fatalf("list run records failed: %v", err)
	}
	if len(records) != 1 || records[0].UnlockReason != "race 3 stewards decision" {
		t.Fatalf("expected an unlock run record with the reason, got %+v", records)
	}
}

func TestLockService_LockUnlockCycle(t *testing.T) {
	svc, _, _ := newLockService()

	for i := 0; i < 3; i++ {
		if _, err := svc.Lock(t.Context(), memory.EventIDDonington, "ops"); err != nil {
			t.Fatalf("lock cycle %d failed: %v", i, err)
		}
		if _, err := svc.Unlock(t.Context(), memory.EventIDDonington, "ops", "rescore"); err != nil {
			t.Fatalf("unlock cycle %d failed: %v", i, err)
		}
	}

	evt, err := svc.Lock(t.Context(), memory.EventIDDonington, "ops")
	if err != nil {
		t.Fatalf("final lock failed: %v", err)
	}
	if !evt.ResultsLocked || evt.Status != event.StatusComplete {
		t.Fatalf("event should end locked and complete, got %+v", evt)
	}
}
