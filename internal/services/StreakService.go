package services

import (
	"streakd/internal/models"
	"streakd/internal/structures"
	"sync"
	"time"
)

type StreakServiceInterface interface {
	Get() models.StreakRecord
	IncrementIfAllowed(now time.Time) models.StreakRecord
	SaveReferencePhoto(uri string)
	ReferencePhoto() (string, bool)
	RecordCheckin(entry models.CheckinEntry)
	Checkins() []models.CheckinEntry
	Session() (models.Session, bool)
	SetSession(session models.Session)
	ClearSession()
	GetSnapshot() *models.Storage
	PutSnapshot(storage *models.Storage)
}

// StreakService owns the whole persisted installation state: streak record,
// reference photo, check-in journal and the auth session. A single mutex
// serializes writers so concurrent increments cannot lose updates.
type StreakService struct {
	mu                  sync.Mutex
	state               models.Storage
	allowMultiplePerDay bool
	maxJournalEntries   int
}

const defaultMaxJournalEntries = 1000

func NewStreakService(conf *structures.Config) StreakServiceInterface {
	maxEntries := conf.Checkin.MaxJournalEntries
	if maxEntries <= 0 {
		maxEntries = defaultMaxJournalEntries
	}
	return &StreakService{
		state:               models.Storage{Version: models.StorageVersion},
		allowMultiplePerDay: conf.Checkin.AllowMultiplePerDay,
		maxJournalEntries:   maxEntries,
	}
}

func (ss *StreakService) Get() models.StreakRecord {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.state.Streak
}

// IncrementIfAllowed applies the throttle policy for the calendar date of
// now and returns the resulting record. With the guard active (the
// production default) a second call on the same date is a no-op.
func (ss *StreakService) IncrementIfAllowed(now time.Time) models.StreakRecord {
	today := models.CheckinDate(now)

	ss.mu.Lock()
	defer ss.mu.Unlock()

	if !ss.allowMultiplePerDay && ss.state.Streak.LastCheckin == today {
		return ss.state.Streak
	}

	ss.state.Streak = models.StreakRecord{
		Count:       ss.state.Streak.Count + 1,
		LastCheckin: today,
	}
	return ss.state.Streak
}

func (ss *StreakService) SaveReferencePhoto(uri string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.state.ReferencePhoto = uri
}

func (ss *StreakService) ReferencePhoto() (string, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.state.ReferencePhoto, ss.state.ReferencePhoto != ""
}

func (ss *StreakService) RecordCheckin(entry models.CheckinEntry) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.state.Checkins = append(ss.state.Checkins, entry)
	if len(ss.state.Checkins) > ss.maxJournalEntries {
		ss.state.Checkins = ss.state.Checkins[len(ss.state.Checkins)-ss.maxJournalEntries:]
	}
}

func (ss *StreakService) Checkins() []models.CheckinEntry {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	out := make([]models.CheckinEntry, len(ss.state.Checkins))
	copy(out, ss.state.Checkins)
	return out
}

func (ss *StreakService) Session() (models.Session, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.state.Session == nil {
		return models.Session{}, false
	}
	return *ss.state.Session, true
}

func (ss *StreakService) SetSession(session models.Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.state.Session = &session
}

func (ss *StreakService) ClearSession() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.state.Session = nil
}

// GetSnapshot returns a deep copy for the persistence layer, so file
// writes never race with in-flight mutations.
func (ss *StreakService) GetSnapshot() *models.Storage {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	snapshot := ss.state
	snapshot.Version = models.StorageVersion
	snapshot.Checkins = make([]models.CheckinEntry, len(ss.state.Checkins))
	copy(snapshot.Checkins, ss.state.Checkins)
	if ss.state.Session != nil {
		session := *ss.state.Session
		snapshot.Session = &session
	}
	return &snapshot
}

func (ss *StreakService) PutSnapshot(storage *models.Storage) {
	if storage == nil {
		return
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.state = *storage
}
