package logger

import (
	"log/slog"
	"strings"
)

// Service identifies the running process on every record
type Service struct {
	Name        string
	Version     string
	Environment string
}

func (s Service) attrs() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, s.Name),
		slog.String(AttrKeyVersion, s.Version),
		slog.String(AttrKeyEnvironment, s.Environment),
	}
}

// Config selects the handler built by New
type Config struct {
	Level     slog.Level
	JSON      bool
	AddSource bool
	Service   Service
}

var levelNames = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}

// ParseLevel maps a level name to its slog level, case-insensitively
func ParseLevel(name string) (slog.Level, bool) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	return level, ok
}

// ForEnvironment returns the preset for svc.Environment. Production logs
// JSON at info, development logs text at debug with source locations, and
// every other environment logs text at info.
func ForEnvironment(svc Service) Config {
	switch strings.ToLower(svc.Environment) {
	case EnvironmentProduction:
		return Config{Level: slog.LevelInfo, JSON: true, Service: svc}
	case EnvironmentDev, EnvironmentDevelopment:
		return Config{Level: slog.LevelDebug, AddSource: true, Service: svc}
	default:
		return Config{Level: slog.LevelInfo, Service: svc}
	}
}

// FromSettings starts from the environment preset and applies an explicit
// level and format on top. Unknown or empty values keep the preset.
func FromSettings(level, format string, svc Service) Config {
	cfg := ForEnvironment(svc)
	if parsed, ok := ParseLevel(level); ok {
		cfg.Level = parsed
	}
	switch strings.ToLower(format) {
	case LogFormatJSON:
		cfg.JSON = true
	case LogFormatText:
		cfg.JSON = false
	}
	return cfg
}

func (c Config) handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: c.Level, AddSource: c.AddSource}
}
