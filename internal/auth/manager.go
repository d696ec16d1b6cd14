package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gookit/validate"
	"go.uber.org/atomic"

	"streakd/internal/models"
	"streakd/internal/providers"
)

type State int32

const (
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionStore is where the manager parks the session between runs.
type SessionStore interface {
	Session() (models.Session, bool)
	SetSession(session models.Session)
	ClearSession()
}

// Manager tracks the authenticated-session lifecycle. State starts as
// Unknown until Restore resolves it; afterwards every transition goes
// through apply, driven by the session the provider hands back.
// A succeeding VerifyCode call does not flip state on its own.
type Manager struct {
	provider ProviderInterface
	store    SessionStore
	logger   providers.Logger
	state    *atomic.Int32

	mu      sync.Mutex
	subs    map[int]chan State
	nextSub int
}

func NewManager(provider ProviderInterface, store SessionStore, logger providers.Logger) *Manager {
	return &Manager{
		provider: provider,
		store:    store,
		logger:   logger,
		state:    atomic.NewInt32(int32(StateUnknown)),
		subs:     make(map[int]chan State),
	}
}

func (m *Manager) State() State {
	return State(m.state.Load())
}

// Restore resolves the initial Unknown state from the persisted session.
// Expired sessions are discarded rather than restored.
func (m *Manager) Restore() {
	session, ok := m.store.Session()
	if ok && session.Expired(time.Now()) {
		m.logger.Infof(providers.TypeApp, "Persisted session expired, discarding")
		ok = false
	}
	if !ok {
		m.apply(nil)
		return
	}
	m.logger.Infof(providers.TypeApp, "Restored session for %s", session.Email)
	m.apply(&session)
}

// Subscribe registers a state-change listener. The returned cancel func
// must be called on teardown. A slow listener only ever misses
// intermediate states, never the latest one.
func (m *Manager) Subscribe() (<-chan State, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan State, 1)
	m.subs[id] = ch

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// RequestCode asks the provider to mail a one-time code. It never
// changes state.
func (m *Manager) RequestCode(ctx context.Context, email string) error {
	if !validate.IsEmail(email) {
		return newAuthError(http.StatusBadRequest, "invalid email address")
	}
	return m.provider.SendCode(ctx, email)
}

// VerifyCode submits the emailed code. On success the returned session is
// handed to apply, which performs the actual transition.
func (m *Manager) VerifyCode(ctx context.Context, email, code string) error {
	if !validate.IsEmail(email) {
		return newAuthError(http.StatusBadRequest, "invalid email address")
	}
	if code == "" {
		return newAuthError(http.StatusBadRequest, "verification code is required")
	}

	session, err := m.provider.VerifyCode(ctx, email, code)
	if err != nil {
		return err
	}
	m.apply(&session)
	return nil
}

// SignOut asks the provider to invalidate the session. The local
// transition happens only once the provider confirms.
func (m *Manager) SignOut(ctx context.Context) error {
	session, ok := m.store.Session()
	if !ok {
		m.apply(nil)
		return nil
	}
	if err := m.provider.SignOut(ctx, session.AccessToken); err != nil {
		return err
	}
	m.apply(nil)
	return nil
}

// apply is the sole transition authority: it stores or clears the session,
// updates the state word and notifies subscribers.
func (m *Manager) apply(session *models.Session) {
	next := StateUnauthenticated
	if session != nil {
		m.store.SetSession(*session)
		next = StateAuthenticated
	} else {
		m.store.ClearSession()
	}

	prev := State(m.state.Swap(int32(next)))
	if prev != next {
		m.logger.Infof(providers.TypeApp, "Session state: %s -> %s", prev, next)
	}
	m.notify(next)
}

func (m *Manager) notify(state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		// Replace a pending unread state instead of blocking.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

// Middleware gates handlers that require an authenticated session.
func Middleware(manager *Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if manager.State() != StateAuthenticated {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
