// Package engine provides the editing engine behind a single text input.
//
// The engine package is the facade that combines the line buffer, the
// cursor, and the undo/redo history into keystroke-level operations. Every
// change made through the Engine is recorded as a command, so it can be
// undone and redone.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: line storage and (line, column) positions
//   - cursor: caret and selection, clamped into the buffer
//   - editor: a buffer plus a cursor, with the primitive edits
//   - history: insert/delete commands and bounded undo/redo stacks
//
// # Thread Safety
//
// An Engine is not safe for concurrent use. It is owned by one editing
// surface and driven from one goroutine.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("Hello"))
//
//	e.Cursor().MoveDocEnd(false)
//	e.Type(", World!")
//	e.Text() // "Hello, World!"
//
//	e.Undo()
//	e.Text() // "Hello"
//
// # Selections
//
// Typing, Enter, Tab, and Backspace replace an active selection. The
// deletion and the insertion are separate undo steps.
//
//	e.SelectAll()
//	e.Type("replaced")
//	e.Undo() // removes "replaced"
//	e.Undo() // restores the original text and selection
//
// # Positions
//
// Columns are byte offsets within a line. Out-of-range positions are
// clamped, never rejected.
package engine
