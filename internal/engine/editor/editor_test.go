package editor

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dshills/lineedit/internal/engine/buffer"
)

func newTestEditor(text string, pos Position) *Editor {
	e := NewFromString(text)
	e.Cursor().MoveTo(pos)
	return e
}

func selectRange(e *Editor, from, to Position) {
	e.Cursor().MoveTo(from)
	e.Cursor().StartSelection()
	e.Cursor().SetCursor(to, false)
}

func TestSetTextResetsCursor(t *testing.T) {
	e := newTestEditor("abc\ndef", buffer.Pos(1, 2))
	e.Cursor().MoveLeft(true)

	e.SetText("xyz")

	if !e.Cursor().Pos().IsZero() {
		t.Errorf("cursor = %v, want origin", e.Cursor().Pos())
	}
	if e.Cursor().HasSelection() {
		t.Error("selection should be cleared")
	}
	if e.Text() != "xyz" {
		t.Errorf("text = %q", e.Text())
	}
}

// InsertText

func TestInsertTextWithNewline(t *testing.T) {
	e := newTestEditor("hello", buffer.Pos(0, 5))

	e.InsertText("\nworld")

	if got := e.Buffer().Lines(); !reflect.DeepEqual(got, []string{"hello", "world"}) {
		t.Errorf("lines = %q", got)
	}
	if e.Cursor().Pos() != buffer.Pos(1, 5) {
		t.Errorf("cursor = %v, want (1:5)", e.Cursor().Pos())
	}
}

func TestInsertTextMidLine(t *testing.T) {
	e := newTestEditor("held", buffer.Pos(0, 3))

	e.InsertText("lo wor")

	if e.Text() != "hello world" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Cursor().Pos() != buffer.Pos(0, 9) {
		t.Errorf("cursor = %v", e.Cursor().Pos())
	}
}

func TestInsertTextStripsCarriageReturns(t *testing.T) {
	e := newTestEditor("", Position{})

	e.InsertText("a\r\nb\rc")

	if e.Text() != "a\nbc" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Cursor().Pos() != buffer.Pos(1, 2) {
		t.Errorf("cursor = %v", e.Cursor().Pos())
	}
}

func TestInsertTextReplacesSelection(t *testing.T) {
	e := newTestEditor("abcdef", Position{})
	selectRange(e, buffer.Pos(0, 4), buffer.Pos(0, 1))

	e.InsertText("X")

	if e.Text() != "aXef" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Cursor().Pos() != buffer.Pos(0, 2) || e.Cursor().HasSelection() {
		t.Errorf("cursor = %v, selection %v", e.Cursor().Pos(), e.Cursor().HasSelection())
	}
}

// Backspace

func TestBackspaceMergesLines(t *testing.T) {
	e := newTestEditor("ab\ncd", buffer.Pos(1, 0))

	e.Backspace()

	if got := e.Buffer().Lines(); !reflect.DeepEqual(got, []string{"abcd"}) {
		t.Errorf("lines = %q", got)
	}
	if e.Cursor().Pos() != buffer.Pos(0, 2) {
		t.Errorf("cursor = %v, want (0:2)", e.Cursor().Pos())
	}
}

func TestBackspaceDeletesCharacter(t *testing.T) {
	e := newTestEditor("abc", buffer.Pos(0, 2))

	e.Backspace()

	if e.Text() != "ac" || e.Cursor().Pos() != buffer.Pos(0, 1) {
		t.Errorf("text = %q, cursor = %v", e.Text(), e.Cursor().Pos())
	}
}

func TestBackspaceAtOriginIsNoop(t *testing.T) {
	e := newTestEditor("abc", Position{})
	rev := e.Buffer().RevisionID()

	e.Backspace()

	if e.Text() != "abc" || !e.Cursor().Pos().IsZero() {
		t.Errorf("text = %q, cursor = %v", e.Text(), e.Cursor().Pos())
	}
	if e.Buffer().RevisionID() != rev {
		t.Error("no-op backspace should not touch the buffer")
	}
}

func TestBackspacePrefersSelection(t *testing.T) {
	e := newTestEditor("ab\ncd\nef", Position{})
	selectRange(e, buffer.Pos(0, 1), buffer.Pos(2, 1))

	e.Backspace()

	if e.Text() != "af" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Cursor().Pos() != buffer.Pos(0, 1) {
		t.Errorf("cursor = %v", e.Cursor().Pos())
	}
}

func TestBackspaceUntilEmptyKeepsOneLine(t *testing.T) {
	e := newTestEditor("a\nb\n", buffer.Pos(2, 0))

	for i := 0; i < 10; i++ {
		e.Backspace()
	}

	if e.Buffer().LineCount() != 1 || e.Text() != "" {
		t.Errorf("lines = %q", e.Buffer().Lines())
	}
}

// NewLine

func TestNewLineSplits(t *testing.T) {
	e := newTestEditor("hello world", buffer.Pos(0, 5))

	e.NewLine()

	if got := e.Buffer().Lines(); !reflect.DeepEqual(got, []string{"hello", " world"}) {
		t.Errorf("lines = %q", got)
	}
	if e.Cursor().Pos() != buffer.Pos(1, 0) {
		t.Errorf("cursor = %v", e.Cursor().Pos())
	}
}

func TestNewLineReplacesSelection(t *testing.T) {
	e := newTestEditor("abcdef", Position{})
	selectRange(e, buffer.Pos(0, 2), buffer.Pos(0, 4))

	e.NewLine()

	if e.Text() != "ab\nef" {
		t.Errorf("text = %q", e.Text())
	}
}

// Position-addressed primitives

func TestTextInRangeAndDeleteRange(t *testing.T) {
	e := newTestEditor("abcdef", Position{})
	r := Range{Start: buffer.Pos(0, 1), End: buffer.Pos(0, 4)}

	if got := e.TextInRange(r); got != "bcd" {
		t.Errorf("TextInRange = %q, want bcd", got)
	}

	e.DeleteRange(r)

	if got := e.Buffer().Lines(); !reflect.DeepEqual(got, []string{"aef"}) {
		t.Errorf("lines = %q", got)
	}
	if e.Cursor().Pos() != buffer.Pos(0, 1) {
		t.Errorf("cursor = %v, want (0:1)", e.Cursor().Pos())
	}
}

func TestTextInRangeCrossLine(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree", Position{})

	tests := []struct {
		name string
		r    Range
		want string
	}{
		{"two lines", Range{Start: buffer.Pos(0, 1), End: buffer.Pos(1, 2)}, "ne\ntw"},
		{"three lines reversed", Range{Start: buffer.Pos(2, 3), End: buffer.Pos(0, 3)}, "\ntwo\nthr"},
		{"line break only", Range{Start: buffer.Pos(0, 3), End: buffer.Pos(1, 0)}, "\n"},
		{"zero width", Range{Start: buffer.Pos(1, 1), End: buffer.Pos(1, 1)}, ""},
		{"out of bounds line", Range{Start: buffer.Pos(0, 0), End: buffer.Pos(5, 0)}, ""},
		{"out of bounds col", Range{Start: buffer.Pos(0, 0), End: buffer.Pos(0, 9)}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.TextInRange(tt.r); got != tt.want {
				t.Errorf("TextInRange(%v) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestDeleteRangeCrossLine(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree", buffer.Pos(2, 5))

	e.DeleteRange(Range{Start: buffer.Pos(2, 2), End: buffer.Pos(0, 1)})

	if e.Text() != "oree" {
		t.Errorf("text = %q", e.Text())
	}
	if e.Cursor().Pos() != buffer.Pos(0, 1) {
		t.Errorf("cursor = %v", e.Cursor().Pos())
	}
}

func TestDeleteRangeZeroWidthIsNoop(t *testing.T) {
	e := newTestEditor("abc", buffer.Pos(0, 3))

	e.DeleteRange(Range{Start: buffer.Pos(0, 1), End: buffer.Pos(0, 1)})

	if e.Text() != "abc" || e.Cursor().Pos() != buffer.Pos(0, 3) {
		t.Errorf("text = %q, cursor = %v", e.Text(), e.Cursor().Pos())
	}
}

func TestDeleteRangeWholeDocument(t *testing.T) {
	e := newTestEditor("a\nb\nc", Position{})

	e.DeleteRange(Range{Start: Position{}, End: e.Buffer().End()})

	if e.Buffer().LineCount() != 1 || e.Text() != "" {
		t.Errorf("lines = %q", e.Buffer().Lines())
	}
}

func TestDeleteRangeClampsStaleEnds(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		r       Range
		want    string
		wantPos Position
	}{
		{"end past document", "abc\ndef", Range{Start: buffer.Pos(0, 2), End: buffer.Pos(9, 9)}, "ab", buffer.Pos(0, 2)},
		{"both ends past document", "ab\ncd", Range{Start: buffer.Pos(5, 0), End: buffer.Pos(1, 9)}, "ab\ncd", buffer.Pos(0, 0)},
		{"negative start line", "abcdef", Range{Start: buffer.Pos(-1, 5), End: buffer.Pos(0, 2)}, "abf", buffer.Pos(0, 2)},
		{"reversed past line end", "abc\ndef", Range{Start: buffer.Pos(1, 99), End: buffer.Pos(0, 99)}, "abc", buffer.Pos(0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(tt.text, Position{})

			e.DeleteRange(tt.r)

			if e.Text() != tt.want {
				t.Errorf("text = %q, want %q", e.Text(), tt.want)
			}
			if len(e.Text()) > len(tt.text) {
				t.Errorf("delete grew the document: %q", e.Text())
			}
			if got := e.Cursor().Pos(); got != tt.wantPos {
				t.Errorf("cursor = %v, want %v", got, tt.wantPos)
			}
		})
	}
}

func TestInsertTextAtMultiline(t *testing.T) {
	e := newTestEditor("startend", buffer.Pos(0, 0))

	end := e.InsertTextAt(buffer.Pos(0, 5), "-one\ntwo\nthree-")

	if e.Text() != "start-one\ntwo\nthree-end" {
		t.Errorf("text = %q", e.Text())
	}
	if end != buffer.Pos(2, 6) || e.Cursor().Pos() != end {
		t.Errorf("end = %v, cursor = %v", end, e.Cursor().Pos())
	}
}

func TestInsertTextAtClamps(t *testing.T) {
	e := newTestEditor("ab", Position{})

	end := e.InsertTextAt(buffer.Pos(4, 1), "X")

	if e.Text() != "aXb" {
		t.Errorf("text = %q", e.Text())
	}
	if end != buffer.Pos(0, 2) {
		t.Errorf("end = %v", end)
	}
}

func TestInsertThenDeleteIsInverse(t *testing.T) {
	docs := []string{"", "abc", "one\ntwo\nthree", "\n\n"}
	inserts := []string{"x", "\n", "hello\nworld", "a\n\nb\n"}

	for _, doc := range docs {
		for _, ins := range inserts {
			e := NewFromString(doc)
			at := e.Buffer().End()
			at.Col /= 2

			end := e.InsertTextAt(at, ins)
			if got := e.TextInRange(Range{Start: at, End: end}); got != ins {
				t.Errorf("doc %q insert %q: extracted %q", doc, ins, got)
			}
			e.DeleteRange(Range{Start: at, End: end})

			if e.Text() != doc {
				t.Errorf("doc %q insert %q: after delete got %q", doc, ins, e.Text())
			}
		}
	}
}

func TestSelectionRange(t *testing.T) {
	e := newTestEditor("abc\ndef", buffer.Pos(1, 1))

	r := e.SelectionRange()
	if !r.IsEmpty() || r.Start != buffer.Pos(1, 1) {
		t.Errorf("no selection: got %v", r)
	}

	selectRange(e, buffer.Pos(1, 2), buffer.Pos(0, 1))
	r = e.SelectionRange()
	if r.Start != buffer.Pos(0, 1) || r.End != buffer.Pos(1, 2) {
		t.Errorf("selection range = %v", r)
	}
	if got := e.TextInRange(r); got != strings.Join([]string{"bc", "de"}, "\n") {
		t.Errorf("selected text = %q", got)
	}
}
