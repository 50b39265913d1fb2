// Package config loads loosesql CLI configuration from file, environment
// variables and flags.
package config

// Defaults for configuration values.
const (
	// DefaultDialect is used when no dialect is configured.
	DefaultDialect = "ansi"
	// DefaultOutput is the default output format.
	DefaultOutput = "auto"
)

// Config holds the resolved CLI configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
type Config struct {
	// Dialect is the name of the registered dialect profile to scan with.
	Dialect string `koanf:"dialect"`

	// SkipEmpty suppresses statements whose trimmed text is empty.
	SkipEmpty bool `koanf:"skip_empty"`

	// Classify tiles every statement into classified tokens.
	Classify bool `koanf:"classify"`

	// OutputFormat is one of auto, text, markdown, json.
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging to stderr.
	Verbose bool `koanf:"verbose"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory when none was.
	ProjectRoot string `koanf:"-"`
}
