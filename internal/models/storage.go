package models

import "time"

// StorageVersion is the current on-disk envelope version.
const StorageVersion = 1

// CheckinEntry is one journal line per classification attempt, accepted
// or not. The journal is informational only and never feeds back into
// the streak invariants.
type CheckinEntry struct {
	At         time.Time `json:"at"`
	Date       string    `json:"date"`
	Label      string    `json:"label"`
	Confidence string    `json:"confidence"`
	Accepted   bool      `json:"accepted"`
}

// Storage is the single persisted record. Streak count and last check-in
// date live in one envelope so a crash can never leave them disagreeing.
type Storage struct {
	Version        int            `json:"version"`
	Streak         StreakRecord   `json:"streak"`
	ReferencePhoto string         `json:"reference_photo,omitempty"`
	Session        *Session       `json:"session,omitempty"`
	Checkins       []CheckinEntry `json:"checkins,omitempty"`
}
