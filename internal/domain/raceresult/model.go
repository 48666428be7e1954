package raceresult

import "time"

// Result holds the official finishing orders for one event. Each order lists
// driver ids from first place down; a driver absent from an order did not
// start or finish that session.
type Result struct {
	EventID    string
	Qualifying []string
	Race1      []string
	Race2      []string
	Race3      []string
	UpdatedAt  time.Time
}

// Session names, in scoring order.
const (
	SessionQualifying = "qualifying"
	SessionRace1      = "race1"
	SessionRace2      = "race2"
	SessionRace3      = "race3"
)

type Session struct {
	Name  string
	Order []string
}

// Sessions returns the four sessions in their fixed scoring order.
func (r Result) Sessions() []Session {
	return []Session{
		{Name: SessionQualifying, Order: r.Qualifying},
		{Name: SessionRace1, Order: r.Race1},
		{Name: SessionRace2, Order: r.Race2},
		{Name: SessionRace3, Order: r.Race3},
	}
}
