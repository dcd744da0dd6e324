package buffer

import (
	"strings"
	"sync/atomic"
)

// RevisionID identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer holds a document as an ordered sequence of lines.
// The sequence is never empty: a document with no content is a single
// empty line.
type Buffer struct {
	lines      []string
	revisionID RevisionID
}

// New creates a new empty buffer.
func New() *Buffer {
	return &Buffer{
		lines:      []string{""},
		revisionID: NewRevisionID(),
	}
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string) *Buffer {
	b := New()
	b.SetText(s)
	return b
}

// SplitLines strips carriage returns from s and splits it on "\n".
// The result always has at least one element.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	return strings.Split(s, "\n")
}

// SetText replaces the whole document.
func (b *Buffer) SetText(text string) {
	b.lines = SplitLines(text)
	b.touch()
}

// Text returns the whole document joined with "\n", with no trailing
// separator.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// LineCount returns the number of lines. It is never less than 1.
func (b *Buffer) LineCount() int {
	if len(b.lines) == 0 {
		return 1
	}
	return len(b.lines)
}

// LineLen returns the byte length of a line. Out-of-range lines are clamped
// to the nearest valid line.
func (b *Buffer) LineLen(line int) int {
	if len(b.lines) == 0 {
		return 0
	}
	return len(b.lines[b.clampLine(line)])
}

// Line returns the text of a line, clamped like LineLen.
func (b *Buffer) Line(line int) string {
	if len(b.lines) == 0 {
		return ""
	}
	return b.lines[b.clampLine(line)]
}

// Lines returns the underlying line slice. The editor splices through the
// mutation methods below; callers must not retain the slice across edits.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Clamp returns p moved to the nearest valid location in the buffer.
func (b *Buffer) Clamp(p Position) Position {
	p.Line = b.clampLine(p.Line)
	if p.Col < 0 {
		p.Col = 0
	}
	if n := b.LineLen(p.Line); p.Col > n {
		p.Col = n
	}
	return p
}

// InBounds returns true if p addresses an existing location without clamping.
func (b *Buffer) InBounds(p Position) bool {
	if p.Line < 0 || p.Line >= b.LineCount() || p.Col < 0 {
		return false
	}
	return p.Col <= b.LineLen(p.Line)
}

// End returns the position just past the last byte of the document.
func (b *Buffer) End() Position {
	last := b.LineCount() - 1
	return Position{Line: last, Col: b.LineLen(last)}
}

// Mutation

// SetLine replaces the text of an existing line. Out-of-range lines are
// ignored.
func (b *Buffer) SetLine(line int, text string) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	b.lines[line] = text
	b.touch()
}

// InsertLine inserts a new line so that it becomes line index at. Indexes
// past the end append.
func (b *Buffer) InsertLine(at int, text string) {
	if at < 0 {
		at = 0
	}
	if at > len(b.lines) {
		at = len(b.lines)
	}
	b.lines = append(b.lines, "")
	copy(b.lines[at+1:], b.lines[at:])
	b.lines[at] = text
	b.touch()
}

// RemoveLines removes lines in [from, to). Removing every line leaves a
// single empty line.
func (b *Buffer) RemoveLines(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(b.lines) {
		to = len(b.lines)
	}
	if from >= to {
		return
	}
	b.lines = append(b.lines[:from], b.lines[to:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.touch()
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// IsEmpty returns true if the document holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) <= 1 && b.Line(0) == ""
}

func (b *Buffer) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if last := len(b.lines) - 1; line > last {
		return last
	}
	return line
}

func (b *Buffer) touch() {
	b.revisionID = NewRevisionID()
}
