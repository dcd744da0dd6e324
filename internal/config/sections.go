package config

import (
	"fmt"
	"time"
)

// Clipboard providers.
const (
	ClipboardMemory = "memory"
	ClipboardSystem = "system"
)

// HistoryConfig contains undo history settings.
type HistoryConfig struct {
	// MaxEntries is the undo depth.
	MaxEntries int `toml:"max_entries" yaml:"max_entries"`
}

// EditorConfig contains editing settings.
type EditorConfig struct {
	// TabText is inserted by the Tab key.
	TabText string `toml:"tab_text" yaml:"tab_text"`
}

// ClipboardConfig selects the clipboard provider.
type ClipboardConfig struct {
	// Provider is ClipboardMemory or ClipboardSystem.
	Provider string `toml:"provider" yaml:"provider"`
}

// FilesConfig contains file handling settings.
type FilesConfig struct {
	// MaxSize is the largest file, in bytes, that will be opened.
	MaxSize int64 `toml:"max_size" yaml:"max_size"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `toml:"level" yaml:"level"`
	// Format is console or json.
	Format string `toml:"format" yaml:"format"`
}

// ScriptConfig contains scripting settings.
type ScriptConfig struct {
	// Timeout bounds a single script run. Zero disables the limit.
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// KeysConfig contains key binding overrides.
type KeysConfig struct {
	// Bindings maps a key chord such as "Ctrl+K" to an action name such as
	// "clipboard.cut". An empty action name unbinds the chord.
	Bindings map[string]string `toml:"bindings" yaml:"bindings"`
}

// Duration is a time.Duration written as a string such as "5s".
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the duration in time.Duration notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}
