package event

import "time"

const (
	StatusUpcoming = "upcoming"
	StatusComplete = "complete"
)

// Event is one race weekend. Sequence is the season ordering key; it is
// unique and monotonic within a season regardless of save order.
type Event struct {
	ID            string
	SeasonID      string
	Sequence      int
	Venue         string
	RoundFrom     int
	RoundTo       int
	DateFrom      time.Time
	DateTo        time.Time
	Status        string
	ResultsLocked bool

	LockedBy     string
	LockedAt     *time.Time
	UnlockedBy   string
	UnlockedAt   *time.Time
	UnlockReason string
}

// LockState carries one lock or unlock transition. UnlockReason is required
// for unlocks and persisted for audit.
type LockState struct {
	ResultsLocked bool
	Status        string
	Actor         string
	At            time.Time
	UnlockReason  string
}
