package providers

import (
	"streakd/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *structures.Config {
	return &structures.Config{
		AppName: "StreakDaemon",
		WebServer: structures.Server{
			Host: "127.0.0.1",
			Port: 8090,
		},
		Persistence: structures.Persistence{
			FilePath:     "data/streakd.db",
			SaveInterval: 30,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  420,
			Dir:   "logs",
		},
		Classifier: structures.ClassifierConfig{
			APIKey:  "test-key",
			Model:   "gemini-2.0-flash-lite",
			Timeout: 30 * time.Second,
		},
		Auth: structures.AuthConfig{
			BaseURL: "https://example.supabase.co/auth/v1",
			APIKey:  "anon-key",
			Timeout: 15 * time.Second,
		},
	}
}

func TestCnfValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	require.NoError(t, v.Validate())
}

func TestCnfValidator_MissingHost(t *testing.T) {
	conf := validConfig()
	conf.WebServer.Host = ""

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_ZeroPort(t *testing.T) {
	conf := validConfig()
	conf.WebServer.Port = 0

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_RelativePathsAccepted(t *testing.T) {
	conf := validConfig()
	conf.Persistence.FilePath = "data/streakd.db"
	conf.Logger.Dir = "logs"

	v := NewCnfValidator(conf)
	assert.NoError(t, v.Validate())
}

func TestCnfValidator_ZeroSaveInterval(t *testing.T) {
	conf := validConfig()
	conf.Persistence.SaveInterval = 0

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_MissingFilePath(t *testing.T) {
	conf := validConfig()
	conf.Persistence.FilePath = ""

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_BadLogLevel(t *testing.T) {
	conf := validConfig()
	conf.Logger.Level = "verbose"

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_MissingClassifierKey(t *testing.T) {
	conf := validConfig()
	conf.Classifier.APIKey = ""

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_MissingClassifierModel(t *testing.T) {
	conf := validConfig()
	conf.Classifier.Model = ""

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_BadAuthURL(t *testing.T) {
	conf := validConfig()
	conf.Auth.BaseURL = "not-a-url"

	v := NewCnfValidator(conf)
	assert.Error(t, v.Validate())
}

func TestCnfValidator_ErrorNamesOffendingField(t *testing.T) {
	conf := validConfig()
	conf.Classifier.APIKey = ""

	v := NewCnfValidator(conf)
	err := v.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
