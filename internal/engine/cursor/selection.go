package cursor

// State is a full snapshot of a cursor. Commands capture it before and
// after an edit so undo and redo can put the caret and selection back
// exactly.
type State struct {
	Pos            Position
	SelectionStart Position
	SelectionEnd   Position
	Selecting      bool
}

// HasSelection returns true if a non-empty selection is active.
func (s State) HasSelection() bool {
	return s.Selecting && s.SelectionStart != s.SelectionEnd
}

// HasSelection returns true if a non-empty selection is active.
func (c *Cursor) HasSelection() bool {
	return c.selecting && c.selectionStart != c.selectionEnd
}

// Selecting returns true while a selection is being extended, even if it is
// still zero-width.
func (c *Cursor) Selecting() bool {
	return c.selecting
}

// Anchor returns the fixed end of the selection.
func (c *Cursor) Anchor() Position {
	return c.selectionStart
}

// SelectionStartPos returns the lower bound of the selection.
func (c *Cursor) SelectionStartPos() Position {
	if c.selectionEnd.Before(c.selectionStart) {
		return c.selectionEnd
	}
	return c.selectionStart
}

// SelectionEndPos returns the upper bound of the selection.
func (c *Cursor) SelectionEndPos() Position {
	if c.selectionEnd.Before(c.selectionStart) {
		return c.selectionStart
	}
	return c.selectionEnd
}

// IsBackward returns true if the live end is before the anchor.
func (c *Cursor) IsBackward() bool {
	return c.selectionEnd.Before(c.selectionStart)
}

// StartSelection anchors a new selection at the caret.
func (c *Cursor) StartSelection() {
	c.selecting = true
	c.selectionStart = c.pos
	c.selectionEnd = c.pos
}

// UpdateSelection moves the live end of the selection to the caret.
func (c *Cursor) UpdateSelection() {
	c.selectionEnd = c.pos
}

// ClearSelection collapses the selection to the caret.
func (c *Cursor) ClearSelection() {
	c.selecting = false
	c.selectionStart = c.pos
	c.selectionEnd = c.pos
}

// SelectAll selects the whole document, leaving the caret at the end.
func (c *Cursor) SelectAll() {
	c.SetCursor(Position{}, false)
	c.StartSelection()
	c.SetCursor(c.buf.End(), false)
	c.UpdateSelection()
}

// State returns a snapshot of the cursor.
func (c *Cursor) State() State {
	return State{
		Pos:            c.pos,
		SelectionStart: c.selectionStart,
		SelectionEnd:   c.selectionEnd,
		Selecting:      c.selecting,
	}
}

// SetState restores a snapshot. All positions are clamped against the
// current buffer.
func (c *Cursor) SetState(s State) {
	c.pos = s.Pos
	c.selectionStart = s.SelectionStart
	c.selectionEnd = s.SelectionEnd
	c.selecting = s.Selecting

	c.clamp()
	if c.buf != nil {
		c.selectionStart = c.buf.Clamp(c.selectionStart)
		c.selectionEnd = c.buf.Clamp(c.selectionEnd)
	}
}
