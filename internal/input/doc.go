// Package input translates terminal key events into editing actions.
//
// A key event from tcell is first normalized into a Chord: control codes
// become Ctrl plus a lowercase letter, Backspace2 folds into Backspace,
// and Shift is dropped from plain printable runes. The chord is looked up
// in a Keymap; unbound printable runes are typed.
//
// # Default bindings
//
//   - Left, Right, Up, Down move the caret; with Shift they extend the
//     selection.
//   - Home and End move to the line ends, Ctrl+Home and Ctrl+End to the
//     document ends. Shift extends.
//   - Backspace, Enter, and Tab edit.
//   - Ctrl+Z undoes; Ctrl+Y and Ctrl+Shift+Z redo.
//   - Ctrl+X, Ctrl+C, Ctrl+V cut, copy, and paste; Ctrl+A selects all.
//
// Bindings are overridden with chord specs and action names:
//
//	km := input.DefaultKeymap()
//	err := km.BindSpec("Ctrl+K", "clipboard.cut")
//
//	h := input.NewHandler(sess, input.WithKeymap(km))
//	consumed, err := h.Handle(ev)
package input
