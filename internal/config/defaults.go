package config

const (
	defaultOutputSuffix = ".si"
	defaultReportColor  = "auto"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Suffix: defaultOutputSuffix,
		},
		Report: Report{
			Color:       defaultReportColor,
			ShowContent: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
