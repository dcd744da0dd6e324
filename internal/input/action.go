package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/lineedit/internal/session"
)

// ErrUnknownAction is returned for action names that do not exist.
var ErrUnknownAction = errors.New("unknown action")

// ActionKind identifies what an action does.
type ActionKind int

// Action kinds.
const (
	ActionNone ActionKind = iota
	ActionType
	ActionMove
	ActionBackspace
	ActionEnter
	ActionTab
	ActionSelectAll
	ActionUndo
	ActionRedo
	ActionCut
	ActionCopy
	ActionPaste
)

// Action is one editing step derived from a key press.
type Action struct {
	Kind ActionKind

	// Text is typed by ActionType.
	Text string

	// Dir is the direction of ActionMove.
	Dir session.Direction

	// Extend grows the selection during ActionMove.
	Extend bool
}

// TypeAction returns an action that types text.
func TypeAction(text string) Action {
	return Action{Kind: ActionType, Text: text}
}

// MoveAction returns an action that moves the caret, extending the
// selection when extend is set.
func MoveAction(dir session.Direction, extend bool) Action {
	return Action{Kind: ActionMove, Dir: dir, Extend: extend}
}

var actionNames = map[ActionKind]string{
	ActionBackspace: "edit.backspace",
	ActionEnter:     "edit.enter",
	ActionTab:       "edit.tab",
	ActionSelectAll: "edit.select_all",
	ActionUndo:      "history.undo",
	ActionRedo:      "history.redo",
	ActionCut:       "clipboard.cut",
	ActionCopy:      "clipboard.copy",
	ActionPaste:     "clipboard.paste",
}

// String returns the action name, for example "cursor.left",
// "select.doc_end", or "clipboard.paste".
func (a Action) String() string {
	switch a.Kind {
	case ActionNone:
		return "none"
	case ActionType:
		return "edit.type"
	case ActionMove:
		if a.Extend {
			return "select." + a.Dir.String()
		}
		return "cursor." + a.Dir.String()
	}
	if name, ok := actionNames[a.Kind]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a.Kind))
}

// ParseAction parses an action name as produced by Action.String. Typing
// actions carry text and cannot be named.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if group, rest, ok := strings.Cut(name, "."); ok && (group == "cursor" || group == "select") {
		dir, ok := session.ParseDirection(rest)
		if !ok {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		return MoveAction(dir, group == "select"), nil
	}

	for kind, n := range actionNames {
		if n == name {
			return Action{Kind: kind}, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Apply performs the action on s.
func (a Action) Apply(s *session.Session) error {
	switch a.Kind {
	case ActionType:
		s.Type(a.Text)
	case ActionMove:
		s.Move(a.Dir, a.Extend)
	case ActionBackspace:
		s.Backspace()
	case ActionEnter:
		s.Enter()
	case ActionTab:
		s.Tab()
	case ActionSelectAll:
		s.SelectAll()
	case ActionUndo:
		s.Undo()
	case ActionRedo:
		s.Redo()
	case ActionCut:
		return s.Cut()
	case ActionCopy:
		return s.Copy()
	case ActionPaste:
		return s.Paste()
	}
	return nil
}
