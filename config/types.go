package config

// Config represents the complete configuration structure
type Config struct {
	GitHub  GitHubConfig  `mapstructure:"github"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GitHubConfig holds API connection details. Token is optional; the
// client falls back to anonymous access with its lower rate limits.
type GitHubConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

// FilterConfig contains named filter presets and the fallback
// expression used when no flag is given
type FilterConfig struct {
	DefaultExpression string            `mapstructure:"default_expression"`
	Presets           map[string]string `mapstructure:"presets"`
}

// OutputConfig contains display settings
type OutputConfig struct {
	ShowDetails bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
