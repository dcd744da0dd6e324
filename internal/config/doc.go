// Package config provides lineedit's configuration.
//
// Configuration is assembled from three layers, higher layers overriding
// lower:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← LINEEDIT_*, highest priority
//	├─────────────────────────────┤
//	│  2. Config File             │  ← TOML or YAML, by extension
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A missing config file is not an error; the defaults apply.
//
// # Configuration Files
//
//	# lineedit.toml
//	[history]
//	max_entries = 256
//
//	[editor]
//	tab_text = "\t"
//
//	[clipboard]
//	provider = "system"
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[script]
//	timeout = "2s"
//
// The same keys are accepted from YAML.
//
// # Error Handling
//
//   - ParseError: a config file failed to parse
//   - ErrInvalidConfig: values are out of range, mistyped, or unknown
package config
