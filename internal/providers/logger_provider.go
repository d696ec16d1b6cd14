package providers

import (
	"io"
	"os"
	"path/filepath"
	"streakd/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

var logFileNames = map[TypeEnum]string{
	TypeApp:  "app.log",
	TypeGet:  "get.log",
	TypePost: "post.log",
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	provider := &LogProvider{
		loggers: make(map[TypeEnum]zerolog.Logger),
	}

	for logType, name := range logFileNames {
		file, err := os.OpenFile(
			filepath.Join(conf.Logger.Dir, name),
			os.O_CREATE|os.O_WRONLY|os.O_APPEND,
			os.FileMode(conf.Logger.Mode),
		)
		if err != nil {
			provider.Close()
			return nil, err
		}
		provider.files = append(provider.files, file)

		var out io.Writer = file
		if conf.Debug {
			out = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		provider.loggers[logType] = zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	return provider, nil
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lg := l.loggers[t]
	lg.Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, file := range l.files {
		_ = file.Close()
	}
	l.files = nil
}
