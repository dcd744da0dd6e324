// Package editor composes a buffer and a cursor into the mutating
// operations an editing surface needs.
//
// Editor keeps the two consistent: every edit leaves the caret at a valid
// position and the buffer with at least one line. It provides two families
// of operations:
//
//   - Caret-relative: InsertText, Backspace, NewLine, DeleteSelection. These
//     act at the cursor and give an active selection priority.
//   - Position-addressed: InsertTextAt, DeleteRange, TextInRange. These are
//     the primitives history commands replay, independent of where the caret
//     happens to be.
//
// Editor does not record history. Undoable edits are built as commands in
// package history and run through a History.
package editor
