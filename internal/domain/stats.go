package domain

import "time"

// Stats - aggregate desk counters computed from a snapshot of parcels.
type Stats struct {
	TotalToday int
	Pending    int
	Collected  int
	Overdue    int
}

// StartOfDay returns local midnight of the day t falls on, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ComputeStats counts parcels relative to now.
func ComputeStats(parcels []Parcel, now time.Time) Stats {
	var s Stats
	today := StartOfDay(now)
	for _, p := range parcels {
		if !p.DateReceived.Before(today) {
			s.TotalToday++
		}
		switch p.Status {
		case StatusPending:
			s.Pending++
			if p.Overdue(now) {
				s.Overdue++
			}
		case StatusCollected:
			s.Collected++
		}
	}
	return s
}
