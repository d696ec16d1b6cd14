package models

import "time"

// DateLayout is the calendar-date form used for check-in throttling.
const DateLayout = "2006-01-02"

// StreakRecord is the persisted per-installation streak state.
// LastCheckin is a calendar-date string ("2026-02-14") or empty when the
// user has never checked in. Count never decreases.
type StreakRecord struct {
	Count       uint64 `json:"count"`
	LastCheckin string `json:"last_checkin,omitempty"`
}

// CheckinDate reduces a point in time to the calendar date used for the
// one-per-day guard. UTC keeps the boundary stable across timezone changes.
func CheckinDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
