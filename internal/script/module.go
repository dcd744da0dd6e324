package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/session"
)

// editorModule implements the ed table.
type editorModule struct {
	sess *session.Session
}

func newEditorModule(s *session.Session) *editorModule {
	return &editorModule{sess: s}
}

// register installs the ed global.
func (m *editorModule) register(L *lua.LState) {
	mod := L.NewTable()

	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "set_text", L.NewFunction(m.setText))
	L.SetField(mod, "line", L.NewFunction(m.line))
	L.SetField(mod, "line_count", L.NewFunction(m.lineCount))
	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "set_cursor", L.NewFunction(m.setCursor))
	L.SetField(mod, "move", L.NewFunction(m.move))
	L.SetField(mod, "type", L.NewFunction(m.typeText))
	L.SetField(mod, "backspace", L.NewFunction(m.backspace))
	L.SetField(mod, "enter", L.NewFunction(m.enter))
	L.SetField(mod, "tab", L.NewFunction(m.tab))
	L.SetField(mod, "select_all", L.NewFunction(m.selectAll))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "cut", L.NewFunction(m.cut))
	L.SetField(mod, "copy", L.NewFunction(m.copy))
	L.SetField(mod, "paste", L.NewFunction(m.paste))
	L.SetField(mod, "undo", L.NewFunction(m.undo))
	L.SetField(mod, "redo", L.NewFunction(m.redo))
	L.SetField(mod, "modified", L.NewFunction(m.modified))
	L.SetField(mod, "path", L.NewFunction(m.path))

	L.SetGlobal("ed", mod)
}

// text() -> string
func (m *editorModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.sess.Text()))
	return 1
}

// set_text(s)
// Replaces the whole document as an undoable edit.
func (m *editorModule) setText(L *lua.LState) int {
	text := L.CheckString(1)

	m.sess.SelectAll()
	if text == "" {
		m.sess.Backspace()
	} else {
		m.sess.Type(text)
	}
	return 0
}

// line(n) -> string | nil
func (m *editorModule) line(L *lua.LState) int {
	n := L.CheckInt(1)
	eng := m.sess.Engine()
	if n < 0 || n >= eng.LineCount() {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(eng.LineText(n)))
	return 1
}

// line_count() -> number
func (m *editorModule) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.sess.Engine().LineCount()))
	return 1
}

// cursor() -> line, col
func (m *editorModule) cursor(L *lua.LState) int {
	pos := m.sess.CursorState().Pos
	L.Push(lua.LNumber(pos.Line))
	L.Push(lua.LNumber(pos.Col))
	return 2
}

// set_cursor(line, col [, extend]) -> line, col
// The position is clamped into the document. With extend the selection
// grows to the new caret; otherwise it is dropped.
func (m *editorModule) setCursor(L *lua.LState) int {
	pos := engine.Position{Line: L.CheckInt(1), Col: L.CheckInt(2)}
	extend := L.OptBool(3, false)

	c := m.sess.Engine().Cursor()
	if extend {
		if !c.Selecting() {
			c.StartSelection()
		}
		c.SetCursor(pos, false)
	} else {
		c.MoveTo(pos)
	}

	return m.cursor(L)
}

// move(direction [, extend])
// direction is one of left, right, up, down, line_start, line_end,
// doc_start, doc_end.
func (m *editorModule) move(L *lua.LState) int {
	name := L.CheckString(1)
	dir, ok := session.ParseDirection(name)
	if !ok {
		L.ArgError(1, "unknown direction "+name)
		return 0
	}
	m.sess.Move(dir, L.OptBool(2, false))
	return 0
}

// type(s)
func (m *editorModule) typeText(L *lua.LState) int {
	m.sess.Type(L.CheckString(1))
	return 0
}

// backspace()
func (m *editorModule) backspace(L *lua.LState) int {
	m.sess.Backspace()
	return 0
}

// enter()
func (m *editorModule) enter(L *lua.LState) int {
	m.sess.Enter()
	return 0
}

// tab()
func (m *editorModule) tab(L *lua.LState) int {
	m.sess.Tab()
	return 0
}

// select_all()
func (m *editorModule) selectAll(L *lua.LState) int {
	m.sess.SelectAll()
	return 0
}

// selection() -> string
// Returns "" when nothing is selected.
func (m *editorModule) selection(L *lua.LState) int {
	L.Push(lua.LString(m.sess.Engine().SelectedText()))
	return 1
}

// cut()
func (m *editorModule) cut(L *lua.LState) int {
	if err := m.sess.Cut(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// copy()
func (m *editorModule) copy(L *lua.LState) int {
	if err := m.sess.Copy(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// paste()
func (m *editorModule) paste(L *lua.LState) int {
	if err := m.sess.Paste(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// undo() -> bool
func (m *editorModule) undo(L *lua.LState) int {
	L.Push(lua.LBool(m.sess.Undo()))
	return 1
}

// redo() -> bool
func (m *editorModule) redo(L *lua.LState) int {
	L.Push(lua.LBool(m.sess.Redo()))
	return 1
}

// modified() -> bool
func (m *editorModule) modified(L *lua.LState) int {
	L.Push(lua.LBool(m.sess.Modified()))
	return 1
}

// path() -> string
func (m *editorModule) path(L *lua.LState) int {
	L.Push(lua.LString(m.sess.Path()))
	return 1
}
