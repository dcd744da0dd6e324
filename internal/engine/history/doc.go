// Package history provides undo/redo for the editor engine.
//
// Edits are captured as commands. A command performs one edit against an
// editor.Editor and can reverse it exactly, because it stores the verbatim
// text involved together with cursor snapshots taken before and after:
//
//   - InsertCommand: insert text at a position
//   - DeleteCommand: remove a range whose text the caller captured
//
// # History Stack
//
// History runs commands and keeps two bounded stacks:
//
//	h := NewHistory(128)
//
//	h.Execute(ed, NewInsertCommand(ed.CursorState().Pos, "hi", ed.CursorState()))
//
//	h.Undo(ed)
//	h.Redo(ed)
//
// Executing a new command discards the redo stack. When the undo stack
// grows past its limit the oldest entry is dropped. Commands are never
// merged; every Execute is one undo step.
package history
