package cursor

import (
	"fmt"

	"github.com/dshills/lineedit/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Cursor tracks a caret and an optional selection over one buffer.
// The buffer is only read, for clamping; the cursor never outlives the
// editor that owns both.
type Cursor struct {
	buf            *buffer.Buffer
	pos            Position
	selectionStart Position
	selectionEnd   Position
	selecting      bool
}

// New creates a cursor at the origin of buf.
func New(buf *buffer.Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the caret position.
func (c *Cursor) Pos() Position {
	return c.pos
}

// SetCursor moves the caret to pos, clamped into the buffer. When
// clearSelection is true any selection is dropped; otherwise an active
// selection's end follows the caret.
func (c *Cursor) SetCursor(pos Position, clearSelection bool) {
	c.pos = pos
	c.clamp()

	if clearSelection {
		c.ClearSelection()
	}
	if c.selecting {
		c.UpdateSelection()
	}
}

// MoveTo moves the caret and clears any selection.
func (c *Cursor) MoveTo(pos Position) {
	c.SetCursor(pos, true)
}

// MoveLeft moves one byte left, wrapping to the end of the previous line.
func (c *Cursor) MoveLeft(extend bool) {
	c.move(extend, func() {
		if c.pos.Col > 0 {
			c.pos.Col--
		} else if c.pos.Line > 0 {
			c.pos.Line--
			c.pos.Col = c.buf.LineLen(c.pos.Line)
		}
	})
}

// MoveRight moves one byte right, wrapping to the start of the next line.
func (c *Cursor) MoveRight(extend bool) {
	c.move(extend, func() {
		if c.pos.Col < c.buf.LineLen(c.pos.Line) {
			c.pos.Col++
		} else if c.pos.Line < c.buf.LineCount()-1 {
			c.pos.Line++
			c.pos.Col = 0
		}
	})
}

// MoveUp moves one line up. The column is clamped to the destination line
// and is not remembered across further vertical moves.
func (c *Cursor) MoveUp(extend bool) {
	c.move(extend, func() {
		if c.pos.Line > 0 {
			c.pos.Line--
			c.pos.Col = min(c.pos.Col, c.buf.LineLen(c.pos.Line))
		}
	})
}

// MoveDown moves one line down, clamping the column like MoveUp.
func (c *Cursor) MoveDown(extend bool) {
	c.move(extend, func() {
		if c.pos.Line < c.buf.LineCount()-1 {
			c.pos.Line++
			c.pos.Col = min(c.pos.Col, c.buf.LineLen(c.pos.Line))
		}
	})
}

// MoveLineStart moves to column 0 of the current line.
func (c *Cursor) MoveLineStart(extend bool) {
	c.move(extend, func() {
		c.pos.Col = 0
	})
}

// MoveLineEnd moves past the last byte of the current line.
func (c *Cursor) MoveLineEnd(extend bool) {
	c.move(extend, func() {
		c.pos.Col = c.buf.LineLen(c.pos.Line)
	})
}

// MoveDocStart moves to the origin.
func (c *Cursor) MoveDocStart(extend bool) {
	c.move(extend, func() {
		c.pos = Position{}
	})
}

// MoveDocEnd moves past the last byte of the document.
func (c *Cursor) MoveDocEnd(extend bool) {
	c.move(extend, func() {
		c.pos = c.buf.End()
	})
}

// move wraps a single caret step with the shared selection rules.
func (c *Cursor) move(extend bool, step func()) {
	if extend && !c.selecting {
		c.StartSelection()
	}

	step()
	c.clamp()

	if extend {
		c.UpdateSelection()
	} else {
		c.ClearSelection()
	}
}

// clamp keeps the caret inside the buffer.
func (c *Cursor) clamp() {
	if c.buf == nil {
		c.pos = Position{}
		c.selectionStart, c.selectionEnd = c.pos, c.pos
		c.selecting = false
		return
	}
	c.pos = c.buf.Clamp(c.pos)
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	if c.HasSelection() {
		return fmt.Sprintf("Cursor%s sel[%s→%s]", c.pos, c.selectionStart, c.selectionEnd)
	}
	return fmt.Sprintf("Cursor%s", c.pos)
}
