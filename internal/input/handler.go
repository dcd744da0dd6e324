package input

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/lineedit/internal/logging"
	"github.com/dshills/lineedit/internal/session"
)

// ErrUnboundKey is returned by Replay for a chord with no action.
var ErrUnboundKey = errors.New("unbound key")

// Handler applies key events to a session.
type Handler struct {
	sess   *session.Session
	keymap *Keymap
	log    zerolog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithKeymap sets the keymap. The default is DefaultKeymap.
func WithKeymap(km *Keymap) Option {
	return func(h *Handler) {
		if km != nil {
			h.keymap = km
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Handler) {
		h.log = logger
	}
}

// NewHandler creates a handler for s.
func NewHandler(s *session.Session, opts ...Option) *Handler {
	h := &Handler{
		sess:   s,
		keymap: DefaultKeymap(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = logging.WithComponent(h.log, "input")
	return h
}

// Keymap returns the active keymap.
func (h *Handler) Keymap() *Keymap {
	return h.keymap
}

// Translate maps a key event to an action. Bound chords win; otherwise a
// printable rune is typed. It reports false for keys with no meaning.
func (h *Handler) Translate(ev *tcell.EventKey) (Action, bool) {
	c := ChordFromEvent(ev)
	if a, ok := h.keymap.Lookup(c); ok {
		return a, true
	}
	if c.Printable() {
		return TypeAction(string(c.Rune)), true
	}
	return Action{}, false
}

// Handle translates ev and applies it. It reports whether the event was
// consumed; the error comes from clipboard actions.
func (h *Handler) Handle(ev *tcell.EventKey) (bool, error) {
	a, ok := h.Translate(ev)
	if !ok {
		h.log.Debug().Stringer("chord", ChordFromEvent(ev)).Msg("unbound key")
		return false, nil
	}

	h.log.Debug().Stringer("chord", ChordFromEvent(ev)).Stringer("action", a).Msg("key")
	if err := a.Apply(h.sess); err != nil {
		h.log.Warn().Err(err).Stringer("action", a).Msg("action failed")
		return true, err
	}
	return true, nil
}

// Replay feeds chords through Handle in order. It stops at the first
// chord that fails or is not consumed.
func (h *Handler) Replay(chords []Chord) error {
	for i, c := range chords {
		ok, err := h.Handle(c.Event())
		if err != nil {
			return fmt.Errorf("key %d (%s): %w", i+1, c, err)
		}
		if !ok {
			return fmt.Errorf("key %d (%s): %w", i+1, c, ErrUnboundKey)
		}
	}
	return nil
}

// Apply handles ev against s with the default keymap.
func Apply(s *session.Session, ev *tcell.EventKey) (bool, error) {
	return NewHandler(s).Handle(ev)
}
