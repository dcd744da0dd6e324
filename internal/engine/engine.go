package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/lineedit/internal/engine/buffer"
	"github.com/dshills/lineedit/internal/engine/cursor"
	"github.com/dshills/lineedit/internal/engine/editor"
	"github.com/dshills/lineedit/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/column coordinate.
	Position = buffer.Position

	// Range is an unordered pair of positions.
	Range = buffer.Range

	// CursorState is a snapshot of the caret and selection.
	CursorState = cursor.State

	// RevisionID identifies a buffer revision.
	RevisionID = buffer.RevisionID

	// Command is an undoable edit command.
	Command = history.Command
)

// Engine combines an editor and its undo history.
type Engine struct {
	ed   *editor.Editor
	hist *history.History

	// Configuration
	initContent    string
	maxUndoEntries int
	tabText        string
	log            zerolog.Logger
}

// New creates a new engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxUndoEntries: DefaultMaxUndoEntries,
		tabText:        DefaultTabText,
		log:            zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.ed = editor.NewFromString(e.initContent)
	e.hist = history.NewHistory(e.maxUndoEntries, history.WithLogger(e.log))
	e.initContent = ""

	return e
}

// NewFromReader creates a new engine with content read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return New(append(opts, WithContent(string(data)))...), nil
}

// ============================================================================
// Read Operations
// ============================================================================

// Text returns the whole document.
func (e *Engine) Text() string {
	return e.ed.Text()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.ed.Buffer().LineCount()
}

// LineText returns the text of a line, clamped to a valid line.
func (e *Engine) LineText(line int) string {
	return e.ed.Buffer().Line(line)
}

// RevisionID returns the current buffer revision.
func (e *Engine) RevisionID() RevisionID {
	return e.ed.Buffer().RevisionID()
}

// TabText returns the text inserted by Tab.
func (e *Engine) TabText() string {
	return e.tabText
}

// Editor returns the underlying editor. Edits made on it directly bypass
// the history.
func (e *Engine) Editor() *editor.Editor {
	return e.ed
}

// History returns the undo history.
func (e *Engine) History() *history.History {
	return e.hist
}

// Cursor returns the cursor.
func (e *Engine) Cursor() *cursor.Cursor {
	return e.ed.Cursor()
}

// CursorState returns a snapshot of the caret and selection.
func (e *Engine) CursorState() CursorState {
	return e.ed.CursorState()
}

// ============================================================================
// Document Operations
// ============================================================================

// Load replaces the document and forgets all history.
func (e *Engine) Load(text string) {
	e.ed.SetText(text)
	e.hist.Clear()
}

// Execute runs a command through the history.
func (e *Engine) Execute(cmd Command) {
	e.hist.Execute(e.ed, cmd)
}

// ============================================================================
// Keystroke Operations
// ============================================================================

// Type inserts text at the caret, replacing any selection. Carriage
// returns are dropped; text that holds nothing else is a no-op.
func (e *Engine) Type(text string) {
	text = strings.ReplaceAll(text, "\r", "")
	if text == "" {
		return
	}
	e.deleteSelection()

	pos := e.ed.Cursor().Pos()
	e.Execute(history.NewInsertCommand(pos, text, e.ed.CursorState()))
}

// Insert pastes text at the caret, replacing any selection.
func (e *Engine) Insert(text string) {
	e.Type(text)
}

// Enter splits the line at the caret.
func (e *Engine) Enter() {
	e.Type("\n")
}

// Tab inserts the configured tab text.
func (e *Engine) Tab() {
	e.Type(e.tabText)
}

// Backspace deletes the selection, or the byte left of the caret, or the
// line break before the caret when it is at the start of a line.
func (e *Engine) Backspace() {
	if _, ok := e.deleteSelection(); ok {
		return
	}

	before := e.ed.CursorState()
	pos := before.Pos

	var from Position
	switch {
	case pos.Col > 0:
		from = Position{Line: pos.Line, Col: pos.Col - 1}
	case pos.Line > 0:
		prev := pos.Line - 1
		from = Position{Line: prev, Col: e.ed.Buffer().LineLen(prev)}
	default:
		return
	}

	text := e.ed.TextInRange(Range{Start: from, End: pos})
	e.Execute(history.NewDeleteCommand(from, pos, text, before))
}

// DeleteSelection deletes the selection and returns the removed text. It
// returns "" when nothing is selected.
func (e *Engine) DeleteSelection() string {
	text, _ := e.deleteSelection()
	return text
}

func (e *Engine) deleteSelection() (string, bool) {
	if !e.ed.Cursor().HasSelection() {
		return "", false
	}

	r := e.ed.SelectionRange()
	text := e.ed.TextInRange(r)
	e.Execute(history.NewDeleteCommand(r.Start, r.End, text, e.ed.CursorState()))
	return text, true
}

// SelectAll selects the whole document.
func (e *Engine) SelectAll() {
	e.ed.Cursor().SelectAll()
}

// SelectedText returns the selected text, or "" when nothing is selected.
func (e *Engine) SelectedText() string {
	if !e.ed.Cursor().HasSelection() {
		return ""
	}
	return e.ed.TextInRange(e.ed.SelectionRange())
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo reverses the last edit. It returns false if there was nothing to undo.
func (e *Engine) Undo() bool {
	return e.hist.Undo(e.ed)
}

// Redo replays the last undone edit. It returns false if there was nothing
// to redo.
func (e *Engine) Redo() bool {
	return e.hist.Redo(e.ed)
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.hist.CanRedo()
}
