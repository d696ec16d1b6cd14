package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath string `yaml:"filePath" validate:"required"`
	// SaveInterval is a number of seconds between scheduled persists.
	SaveInterval int `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type ClassifierConfig struct {
	APIKey  string        `yaml:"apiKey" validate:"required"`
	Model   string        `yaml:"model" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type AuthConfig struct {
	BaseURL string        `yaml:"baseUrl" validate:"required|fullUrl"`
	APIKey  string        `yaml:"apiKey" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"required|min:1"`
}

type CheckinConfig struct {
	// AllowMultiplePerDay disables the one-check-in-per-calendar-day guard.
	// Meant for development installs only.
	AllowMultiplePerDay bool `yaml:"allowMultiplePerDay"`
	MaxJournalEntries   int  `yaml:"maxJournalEntries"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server           `yaml:"webServer"`
	Persistence Persistence      `yaml:"persistence"`
	Logger      LoggerConfig     `yaml:"logger"`
	Classifier  ClassifierConfig `yaml:"classifier"`
	Auth        AuthConfig       `yaml:"auth"`
	Checkin     CheckinConfig    `yaml:"checkin"`
	Cache       CacheConfig      `yaml:"cache"`
	Metrics     MetricsConfig    `yaml:"metrics"`
}
