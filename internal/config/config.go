package config

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/dshills/lineedit/internal/config/loader"
	"github.com/dshills/lineedit/internal/logging"
)

// Default values.
const (
	DefaultMaxEntries    = 128
	DefaultTabText       = "    "
	DefaultMaxFileSize   = 10 * 1024 * 1024 // 10MB
	DefaultLogLevel      = "info"
	DefaultLogFormat     = logging.FormatConsole
	DefaultScriptTimeout = 5 * time.Second
)

// Config is the complete lineedit configuration.
type Config struct {
	History   HistoryConfig   `toml:"history" yaml:"history"`
	Editor    EditorConfig    `toml:"editor" yaml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard" yaml:"clipboard"`
	Files     FilesConfig     `toml:"files" yaml:"files"`
	Log       LogConfig       `toml:"log" yaml:"log"`
	Script    ScriptConfig    `toml:"script" yaml:"script"`
	Keys      KeysConfig      `toml:"keys" yaml:"keys"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		History:   HistoryConfig{MaxEntries: DefaultMaxEntries},
		Editor:    EditorConfig{TabText: DefaultTabText},
		Clipboard: ClipboardConfig{Provider: ClipboardMemory},
		Files:     FilesConfig{MaxSize: DefaultMaxFileSize},
		Log:       LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Script:    ScriptConfig{Timeout: Duration(DefaultScriptTimeout)},
	}
}

// options holds Load settings.
type options struct {
	fs  afero.Fs
	env loader.Loader
}

// Option configures Load.
type Option func(*options)

// WithFS sets the file system config files are read from.
func WithFS(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnvLoader replaces the environment layer. Pass nil to skip it.
func WithEnvLoader(l loader.Loader) Option {
	return func(o *options) {
		o.env = l
	}
}

// Load builds a configuration from the defaults, the file at path (if
// path is non-empty and the file exists), and the environment. The result
// is validated.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var merged map[string]any

	if path != "" {
		fl, err := loader.ForPath(o.fs, path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		fileCfg, err := fl.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, fileCfg)
	}

	if o.env != nil {
		envCfg, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
		merged = loader.DeepMerge(merged, envCfg)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply decodes a merged settings map over c. Keys not present keep their
// current values; unknown keys are rejected.
func (c *Config) apply(settings map[string]any) error {
	if len(settings) == 0 {
		return nil
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.History.MaxEntries <= 0:
		return &ValidationError{Path: "history.max_entries", Message: "must be positive", Value: c.History.MaxEntries}
	case c.Editor.TabText == "":
		return &ValidationError{Path: "editor.tab_text", Message: "must not be empty", Value: c.Editor.TabText}
	case c.Clipboard.Provider != ClipboardMemory && c.Clipboard.Provider != ClipboardSystem:
		return &ValidationError{Path: "clipboard.provider", Message: "must be memory or system", Value: c.Clipboard.Provider}
	case c.Files.MaxSize <= 0:
		return &ValidationError{Path: "files.max_size", Message: "must be positive", Value: c.Files.MaxSize}
	case !logging.ValidLevel(c.Log.Level):
		return &ValidationError{Path: "log.level", Message: "unknown level", Value: c.Log.Level}
	case c.Log.Format != logging.FormatConsole && c.Log.Format != logging.FormatJSON:
		return &ValidationError{Path: "log.format", Message: "must be console or json", Value: c.Log.Format}
	case c.Script.Timeout < 0:
		return &ValidationError{Path: "script.timeout", Message: "must not be negative", Value: c.Script.Timeout}
	}
	return nil
}

// Logging returns the logger settings for logging.New.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
	}
}
