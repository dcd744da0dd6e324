// Package script runs Lua edit scripts against a session.
//
// Scripts execute in a sandboxed gopher-lua state: only the base, table,
// string, and math libraries are opened, and dofile, loadfile, load, and
// loadstring are removed. The session is exposed as the global table ed.
// Lines and columns are 0-based byte offsets, matching the engine.
//
//	ed.move("doc_end")
//	ed.type("\n-- appended\n")
//	local line, col = ed.cursor()
//	ed.set_cursor(0, 0)
//	ed.set_cursor(0, 5, true) -- extend the selection
//	ed.cut()
//
// Every edit goes through the engine, so a script's changes are undoable
// one step at a time. Run bounds execution with the context and the
// configured timeout; a script that overruns returns ErrScriptTimeout.
package script
