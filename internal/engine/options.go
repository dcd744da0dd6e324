package engine

import (
	"github.com/rs/zerolog"

	"github.com/dshills/lineedit/internal/engine/history"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultMaxEntries
	DefaultTabText        = "    "
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithTabText sets the text inserted by Tab.
func WithTabText(text string) Option {
	return func(e *Engine) {
		if text != "" {
			e.tabText = text
		}
	}
}

// WithLogger sets the logger passed down to the history.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = logger
	}
}
