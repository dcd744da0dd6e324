package editor

import (
	"strings"

	"github.com/dshills/lineedit/internal/engine/buffer"
	"github.com/dshills/lineedit/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Position is a line/column coordinate.
	Position = buffer.Position

	// Range is an unordered pair of positions.
	Range = buffer.Range

	// CursorState is a snapshot of the caret and selection.
	CursorState = cursor.State
)

// Editor owns one buffer and one cursor bound to it.
type Editor struct {
	buf *buffer.Buffer
	cur *cursor.Cursor
}

// New creates an editor holding a single empty line.
func New() *Editor {
	buf := buffer.New()
	return &Editor{
		buf: buf,
		cur: cursor.New(buf),
	}
}

// NewFromString creates an editor with initial content and the caret at the
// origin.
func NewFromString(text string) *Editor {
	e := New()
	e.SetText(text)
	return e
}

// SetText replaces the document and resets the caret to (0,0) with no
// selection. This is a direct load, not an undoable edit.
func (e *Editor) SetText(text string) {
	e.buf.SetText(text)
	e.cur.MoveTo(Position{})
}

// Text returns the whole document.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// Buffer returns the underlying buffer for read access.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor.
func (e *Editor) Cursor() *cursor.Cursor {
	return e.cur
}

// CursorState returns a snapshot of the cursor.
func (e *Editor) CursorState() CursorState {
	return e.cur.State()
}

// SetCursorState restores a cursor snapshot.
func (e *Editor) SetCursorState(s CursorState) {
	e.cur.SetState(s)
}

// Clamp returns p moved to the nearest valid location in the document.
func (e *Editor) Clamp(p Position) Position {
	return e.buf.Clamp(p)
}

// SelectionRange returns the normalized selection, or a zero-width range at
// the caret when nothing is selected.
func (e *Editor) SelectionRange() Range {
	if !e.cur.HasSelection() {
		p := e.cur.Pos()
		return Range{Start: p, End: p}
	}
	return Range{Start: e.cur.SelectionStartPos(), End: e.cur.SelectionEndPos()}
}

// Caret-relative editing

// InsertText types text at the caret, replacing any selection. Embedded
// newlines split the line; carriage returns are dropped.
func (e *Editor) InsertText(text string) {
	e.DeleteSelection()

	c := e.cur.Pos()
	var run strings.Builder

	flush := func() {
		if run.Len() == 0 {
			return
		}
		line := e.buf.Line(c.Line)
		e.buf.SetLine(c.Line, line[:c.Col]+run.String()+line[c.Col:])
		c.Col += run.Len()
		run.Reset()
	}

	for i := 0; i < len(text); i++ {
		switch ch := text[i]; ch {
		case '\r':
			continue
		case '\n':
			flush()
			e.cur.MoveTo(c)
			e.NewLine()
			c = e.cur.Pos()
		default:
			run.WriteByte(ch)
		}
	}
	flush()

	e.cur.MoveTo(c)
}

// Backspace deletes the selection if there is one, otherwise the byte left
// of the caret. At column 0 the line is joined onto the previous one.
func (e *Editor) Backspace() {
	if e.DeleteSelection() {
		return
	}

	c := e.cur.Pos()
	switch {
	case c.Col > 0:
		line := e.buf.Line(c.Line)
		e.buf.SetLine(c.Line, line[:c.Col-1]+line[c.Col:])
		c.Col--
	case c.Line > 0:
		prev := e.buf.Line(c.Line - 1)
		e.buf.SetLine(c.Line-1, prev+e.buf.Line(c.Line))
		e.buf.RemoveLines(c.Line, c.Line+1)
		c.Line--
		c.Col = len(prev)
	default:
		return
	}

	e.cur.MoveTo(c)
}

// NewLine splits the current line at the caret, replacing any selection,
// and moves to the start of the new line.
func (e *Editor) NewLine() {
	e.DeleteSelection()

	c := e.cur.Pos()
	line := e.buf.Line(c.Line)

	e.buf.SetLine(c.Line, line[:c.Col])
	e.buf.InsertLine(c.Line+1, line[c.Col:])

	e.cur.MoveTo(Position{Line: c.Line + 1})
}

// DeleteSelection removes the selected text and leaves the caret at its
// start. It reports whether anything was deleted.
func (e *Editor) DeleteSelection() bool {
	if !e.cur.HasSelection() {
		return false
	}
	e.DeleteRange(e.SelectionRange())
	return true
}

// Position-addressed editing

// InsertTextAt inserts text verbatim at pos (clamped), splitting on
// newlines and dropping carriage returns. The caret ends after the inserted
// text with no selection. It returns that end position.
func (e *Editor) InsertTextAt(pos Position, text string) Position {
	cur := e.buf.Clamp(pos)
	parts := buffer.SplitLines(text)

	line := e.buf.Line(cur.Line)
	head, tail := line[:cur.Col], line[cur.Col:]

	if len(parts) == 1 {
		e.buf.SetLine(cur.Line, head+parts[0]+tail)
		cur.Col += len(parts[0])
	} else {
		e.buf.SetLine(cur.Line, head+parts[0])
		for i, p := range parts[1:] {
			if i == len(parts)-2 {
				p += tail
			}
			e.buf.InsertLine(cur.Line+1+i, p)
		}
		last := parts[len(parts)-1]
		cur = Position{Line: cur.Line + len(parts) - 1, Col: len(last)}
	}

	e.cur.MoveTo(cur)
	return cur
}

// DeleteRange removes the text between the two ends of r and leaves the
// caret at the start. Both ends are clamped before they are ordered. A
// zero-width range is a no-op.
func (e *Editor) DeleteRange(r Range) {
	a, b := e.buf.Clamp(r.Start), e.buf.Clamp(r.End)
	a, b = buffer.Min(a, b), buffer.Max(a, b)
	if a == b {
		return
	}

	if a.Line == b.Line {
		line := e.buf.Line(a.Line)
		e.buf.SetLine(a.Line, line[:a.Col]+line[b.Col:])
	} else {
		head := e.buf.Line(a.Line)[:a.Col]
		tail := e.buf.Line(b.Line)[b.Col:]
		e.buf.SetLine(a.Line, head+tail)
		e.buf.RemoveLines(a.Line+1, b.Line+1)
	}

	e.cur.MoveTo(a)
}

// TextInRange returns the text between the two ends of r. It returns an
// empty string for a zero-width range or when either end lies outside the
// document.
func (e *Editor) TextInRange(r Range) string {
	a := buffer.Min(r.Start, r.End)
	b := buffer.Max(r.Start, r.End)
	if a == b || !e.buf.InBounds(a) || !e.buf.InBounds(b) {
		return ""
	}

	if a.Line == b.Line {
		return e.buf.Line(a.Line)[a.Col:b.Col]
	}

	var out strings.Builder
	out.WriteString(e.buf.Line(a.Line)[a.Col:])
	out.WriteByte('\n')
	for line := a.Line + 1; line < b.Line; line++ {
		out.WriteString(e.buf.Line(line))
		out.WriteByte('\n')
	}
	out.WriteString(e.buf.Line(b.Line)[:b.Col])
	return out.String()
}
