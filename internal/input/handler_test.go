package input

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/lineedit/internal/session"
)

func newTestHandler(t *testing.T, opts ...Option) (*Handler, *session.Session) {
	t.Helper()
	s := session.New(session.WithFS(afero.NewMemMapFs()))
	return NewHandler(s, opts...), s
}

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}

func runeKey(r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, mod)
}

func feed(t *testing.T, h *Handler, events ...*tcell.EventKey) {
	t.Helper()
	for _, ev := range events {
		ok, err := h.Handle(ev)
		require.NoError(t, err)
		require.True(t, ok, "event %v not consumed", ChordFromEvent(ev))
	}
}

func typeString(t *testing.T, h *Handler, s string) {
	t.Helper()
	for _, r := range s {
		feed(t, h, runeKey(r, tcell.ModNone))
	}
}

func TestHandleTyping(t *testing.T) {
	h, s := newTestHandler(t)

	typeString(t, h, "hi there")
	feed(t, h, key(tcell.KeyEnter, tcell.ModNone))
	typeString(t, h, "Yo")
	feed(t, h, key(tcell.KeyBackspace2, tcell.ModNone))

	assert.Equal(t, "hi there\nY", s.Text())
}

func TestHandleTab(t *testing.T) {
	h, s := newTestHandler(t)

	feed(t, h, key(tcell.KeyTab, tcell.ModNone))

	assert.Equal(t, "    ", s.Text())
}

func TestHandleSelectionAndClipboard(t *testing.T) {
	h, s := newTestHandler(t)
	typeString(t, h, "hello world")

	feed(t, h, key(tcell.KeyHome, tcell.ModNone))
	for i := 0; i < 5; i++ {
		feed(t, h, key(tcell.KeyRight, tcell.ModShift))
	}
	feed(t, h, key(tcell.KeyCtrlX, tcell.ModCtrl))
	assert.Equal(t, " world", s.Text())

	feed(t, h, key(tcell.KeyEnd, tcell.ModCtrl))
	feed(t, h, runeKey('v', tcell.ModCtrl))
	assert.Equal(t, " worldhello", s.Text())

	feed(t, h, key(tcell.KeyCtrlA, tcell.ModCtrl))
	feed(t, h, runeKey('c', tcell.ModCtrl))
	text, err := s.Clipboard().Read()
	require.NoError(t, err)
	assert.Equal(t, " worldhello", text)
}

func TestHandleUndoRedo(t *testing.T) {
	h, s := newTestHandler(t)
	typeString(t, h, "ab")

	feed(t, h, key(tcell.KeyCtrlZ, tcell.ModCtrl))
	assert.Equal(t, "a", s.Text())

	feed(t, h, key(tcell.KeyCtrlY, tcell.ModCtrl))
	assert.Equal(t, "ab", s.Text())

	feed(t, h, runeKey('z', tcell.ModCtrl), runeKey('Z', tcell.ModCtrl|tcell.ModShift))
	assert.Equal(t, "ab", s.Text())
}

func TestHandleDocumentMovement(t *testing.T) {
	h, s := newTestHandler(t)
	typeString(t, h, "abc")
	feed(t, h, key(tcell.KeyEnter, tcell.ModNone))
	typeString(t, h, "de")

	feed(t, h, key(tcell.KeyHome, tcell.ModCtrl))
	assert.True(t, s.CursorState().Pos.IsZero())

	feed(t, h, key(tcell.KeyEnd, tcell.ModCtrl|tcell.ModShift))
	assert.True(t, s.CursorState().HasSelection())
	assert.Equal(t, "abc\nde", s.Engine().SelectedText())

	feed(t, h, key(tcell.KeyUp, tcell.ModNone))
	assert.False(t, s.CursorState().HasSelection())
	assert.Equal(t, 0, s.CursorState().Pos.Line)
	assert.Equal(t, 2, s.CursorState().Pos.Col)
}

func TestHandleUnboundKeys(t *testing.T) {
	h, s := newTestHandler(t)

	for _, ev := range []*tcell.EventKey{
		key(tcell.KeyF1, tcell.ModNone),
		key(tcell.KeyDelete, tcell.ModNone),
		runeKey('q', tcell.ModCtrl),
		runeKey('x', tcell.ModAlt),
	} {
		ok, err := h.Handle(ev)
		require.NoError(t, err)
		assert.False(t, ok, "event %v", ChordFromEvent(ev))
	}
	assert.Equal(t, "", s.Text())
}

func TestHandleCustomKeymap(t *testing.T) {
	km := DefaultKeymap()
	require.NoError(t, km.BindSpec("Ctrl+Z", ""))
	require.NoError(t, km.BindSpec("Alt+U", "history.undo"))
	h, s := newTestHandler(t, WithKeymap(km))
	typeString(t, h, "ab")

	ok, err := h.Handle(runeKey('z', tcell.ModCtrl))
	require.NoError(t, err)
	assert.False(t, ok)

	feed(t, h, runeKey('u', tcell.ModAlt))
	assert.Equal(t, "a", s.Text())
	assert.Same(t, km, h.Keymap())
}

type failingClipboard struct{}

func (failingClipboard) Read() (string, error) { return "", errors.New("no clipboard") }
func (failingClipboard) Write(string) error    { return errors.New("no clipboard") }

func TestHandleClipboardError(t *testing.T) {
	var buf bytes.Buffer
	s := session.New(session.WithClipboard(failingClipboard{}))
	h := NewHandler(s, WithLogger(zerolog.New(&buf)))

	ok, err := h.Handle(runeKey('v', tcell.ModCtrl))

	assert.True(t, ok)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "action failed")
}

func TestApply(t *testing.T) {
	s := session.New()

	ok, err := Apply(s, runeKey('x', tcell.ModNone))

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "x", s.Text())
}

func TestReplay(t *testing.T) {
	h, s := newTestHandler(t)
	chords, err := ParseKeys("h i Enter t h e r e Ctrl+Home Shift+End Ctrl+X Ctrl+End Ctrl+V")
	require.NoError(t, err)

	require.NoError(t, h.Replay(chords))

	assert.Equal(t, "\ntherehi", s.Text())
}

func TestReplayStopsAtUnboundKey(t *testing.T) {
	h, s := newTestHandler(t)

	err := h.Replay([]Chord{MustParseChord("a"), MustParseChord("F1"), MustParseChord("b")})

	assert.ErrorIs(t, err, ErrUnboundKey)
	assert.Contains(t, err.Error(), "key 2 (F1)")
	assert.Equal(t, "a", s.Text())
}
