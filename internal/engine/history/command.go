package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/lineedit/internal/engine/buffer"
	"github.com/dshills/lineedit/internal/engine/editor"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/column coordinate.
	Position = buffer.Position

	// CursorState is a snapshot of the caret and selection.
	CursorState = editor.CursorState
)

// Command is one reversible edit against an editor.
//
// The set of commands is closed: *InsertCommand and *DeleteCommand.
type Command interface {
	// Execute performs the edit. Executing again after Undo replays it.
	Execute(ed *editor.Editor)

	// Undo reverses a previous Execute.
	Undo(ed *editor.Editor)

	// Description returns a human-readable description of the command.
	Description() string
}

// InsertCommand inserts Text at At.
type InsertCommand struct {
	At     Position
	Text   string
	Before CursorState
	After  CursorState
}

// NewInsertCommand creates an insert command. before is the cursor state to
// restore when the insert is undone.
func NewInsertCommand(at Position, text string, before CursorState) *InsertCommand {
	return &InsertCommand{
		At:     at,
		Text:   text,
		Before: before,
	}
}

// Execute restores the pre-edit cursor and inserts the text. At is
// rewritten to the clamped insertion point so Undo removes exactly what was
// inserted.
func (c *InsertCommand) Execute(ed *editor.Editor) {
	if c == nil {
		return
	}
	ed.SetCursorState(c.Before)
	c.At = ed.Clamp(c.At)
	ed.InsertTextAt(c.At, c.Text)
	c.After = ed.CursorState()
}

// Undo removes the inserted span and restores the pre-edit cursor.
func (c *InsertCommand) Undo(ed *editor.Editor) {
	if c == nil {
		return
	}
	ed.SetCursorState(c.After)
	ed.DeleteRange(editor.Range{Start: c.At, End: c.After.Pos})
	ed.SetCursorState(c.Before)
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	if c == nil {
		return ""
	}
	if len(c.Text) == 1 {
		if c.Text == "\n" {
			return "Insert newline"
		}
		if c.Text == "\t" {
			return "Insert tab"
		}
		return fmt.Sprintf("Type '%s'", c.Text)
	}
	if n := utf8.RuneCountInString(c.Text); n > 20 {
		return fmt.Sprintf("Insert %d characters", n)
	}
	return fmt.Sprintf("Insert %q", c.Text)
}

// DeleteCommand removes the text between From and To. Text must hold the
// content of that range at the time the command is built; Undo reinserts it
// verbatim.
type DeleteCommand struct {
	From   Position
	To     Position
	Text   string
	Before CursorState
	After  CursorState
}

// NewDeleteCommand creates a delete command. The endpoints may be given in
// either order.
func NewDeleteCommand(from, to Position, text string, before CursorState) *DeleteCommand {
	return &DeleteCommand{
		From:   buffer.Min(from, to),
		To:     buffer.Max(from, to),
		Text:   text,
		Before: before,
	}
}

// Execute restores the pre-edit cursor and deletes the range.
func (c *DeleteCommand) Execute(ed *editor.Editor) {
	if c == nil {
		return
	}
	ed.SetCursorState(c.Before)
	ed.DeleteRange(editor.Range{Start: c.From, End: c.To})
	c.After = ed.CursorState()
}

// Undo reinserts the deleted text and restores the pre-edit cursor.
func (c *DeleteCommand) Undo(ed *editor.Editor) {
	if c == nil {
		return
	}
	ed.SetCursorState(c.After)
	ed.InsertTextAt(c.From, c.Text)
	ed.SetCursorState(c.Before)
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	if c == nil {
		return ""
	}
	switch n := utf8.RuneCountInString(c.Text); n {
	case 0:
		return "Delete"
	case 1:
		if c.Text == "\n" {
			return "Join lines"
		}
		return fmt.Sprintf("Delete '%s'", c.Text)
	default:
		return fmt.Sprintf("Delete %d characters", n)
	}
}
