package logger

const (
	LevelDebug = "debug"
	LevelInfo  = "info"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is derived from the server debug flag and is not read from the environment.
	Level string
	// Format selects the encoder: console or json.
	Format string `mapstructure:"format" default:"console"`
}
