// Package config loads and validates scrubsi configuration.
//
// Configuration is TOML. The file is looked up at ~/.config/scrubsi/config.toml,
// then ./scrubsi.toml; a missing file means defaults. Sections:
//   - Output: naming of the scrubbed copy (suffix appended to the input path)
//   - Report: console report color mode and content visibility
//   - Logging: log format and level
package config
