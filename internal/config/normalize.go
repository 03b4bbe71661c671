package config

import "strings"

func (c *Config) normalize() {
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
	c.Report.Color = strings.ToLower(strings.TrimSpace(c.Report.Color))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if c.Report.Color == "" {
		c.Report.Color = defaultReportColor
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
