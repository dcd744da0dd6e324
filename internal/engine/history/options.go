package history

import "github.com/rs/zerolog"

// DefaultMaxEntries is the undo depth used when none is configured.
const DefaultMaxEntries = 128

// Option configures a History.
type Option func(*History)

// WithLogger sets the logger used for debug tracing of history activity.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *History) {
		h.log = logger
	}
}
