// Package cursor provides the caret and selection model for a single
// editing surface.
//
// The cursor package handles:
//
//   - One caret addressed by buffer.Position
//   - An optional selection with a fixed anchor and a live end
//   - Single-step movement that wraps across line boundaries
//   - Snapshot and restore of the full cursor state
//
// Selection Model:
//
// A selection starts at the caret (the anchor) and its end follows the caret
// while selecting is on. It exists only when the anchor and the end differ.
// SelectionStartPos and SelectionEndPos always return the ordered pair, so a
// selection dragged upward reads the same as one dragged downward.
//
// Clamping:
//
// Every position that reaches a Cursor is clamped into the bound buffer.
// Nothing in this package returns an error; stale coordinates degrade to
// the nearest valid location.
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello\nworld")
//	c := cursor.New(buf)
//	c.MoveTo(buffer.Pos(1, 0))
//	c.MoveRight(true) // select "w"
//	c.HasSelection()  // true
package cursor
