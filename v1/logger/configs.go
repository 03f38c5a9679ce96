package logger

import "os"

// Level selects the minimum log level.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level to emit. Defaults to Info.
	Level Level

	// ServiceName is attached to every entry as a "service" field.
	ServiceName string

	// Development switches to a human-readable console encoding.
	Development bool
}

// NewConfig reads configuration from environment variables:
//
//	LOG_LEVEL         (optional: debug, info, warning, error)
//	LOG_SERVICE_NAME  (optional)
func NewConfig() Config {
	return Config{
		Level:       Level(os.Getenv("LOG_LEVEL")),
		ServiceName: os.Getenv("LOG_SERVICE_NAME"),
	}
}
