package testutil

import (
	"context"
	"streakd/internal/models"
	"streakd/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockClassifier implements classifier.ClassifierInterface with a canned verdict.
type MockClassifier struct {
	mu      sync.Mutex
	Verdict models.Verdict
	Calls   [][]byte
}

func (m *MockClassifier) Classify(_ context.Context, image []byte) models.Verdict {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, image)
	return m.Verdict
}

// MockAuthProvider implements auth.ProviderInterface with injectable outcomes.
type MockAuthProvider struct {
	mu            sync.Mutex
	SendCodeErr   error
	VerifySession models.Session
	VerifyErr     error
	SignOutErr    error

	SendCodeCalls []string
	VerifyCalls   [][2]string
	SignOutCalls  []string
}

func (m *MockAuthProvider) SendCode(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCodeCalls = append(m.SendCodeCalls, email)
	return m.SendCodeErr
}

func (m *MockAuthProvider) VerifyCode(_ context.Context, email, code string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.VerifyCalls = append(m.VerifyCalls, [2]string{email, code})
	if m.VerifyErr != nil {
		return models.Session{}, m.VerifyErr
	}
	return m.VerifySession, nil
}

func (m *MockAuthProvider) SignOut(_ context.Context, accessToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SignOutCalls = append(m.SignOutCalls, accessToken)
	return m.SignOutErr
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                  sync.Mutex
	Requests            int
	CacheHits           int
	CacheMisses         int
	Classifications     map[string]int
	PersistObservations int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) IncClassifications(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Classifications == nil {
		m.Classifications = make(map[string]int)
	}
	m.Classifications[result]++
}

func (m *MockMetrics) ObserveClassificationDuration(_ time.Duration) {}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistObservations++
}

// MockPersister implements interfaces.PersisterInterface.
type MockPersister struct {
	mu       sync.Mutex
	Err      error
	Persists int
}

func (m *MockPersister) Persist() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persists++
	return m.Err
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}
