package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"streakd/internal/structures"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "STREAKD_LOG_LEVEL")
	viper.BindEnv("classifier.apiKey", "STREAKD_GEMINI_API_KEY")
	viper.BindEnv("classifier.model", "STREAKD_GEMINI_MODEL")
	viper.BindEnv("auth.baseUrl", "STREAKD_AUTH_URL")
	viper.BindEnv("auth.apiKey", "STREAKD_AUTH_API_KEY")
	viper.BindEnv("checkin.allowMultiplePerDay", "STREAKD_ALLOW_MULTIPLE_PER_DAY")
	viper.BindEnv("persistence.saveInterval", "STREAKD_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "STREAKD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "STREAKD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "StreakDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
