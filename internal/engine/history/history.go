package history

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/lineedit/internal/engine/editor"
)

// OperationInfo provides read-only info about a history entry.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	ID          uuid.UUID // Stable for the life of the entry
	Description string    // Human-readable description
	Timestamp   time.Time // When the command was first executed
}

// entry wraps a command with metadata.
type entry struct {
	id        uuid.UUID
	command   Command
	timestamp time.Time
}

func (e *entry) info() OperationInfo {
	return OperationInfo{
		ID:          e.id,
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}
}

// History manages bounded undo/redo stacks for one editor.
type History struct {
	undoStack []*entry
	redoStack []*entry

	maxEntries int
	log        zerolog.Logger
}

// NewHistory creates a history that keeps at most maxEntries undo steps.
// A non-positive maxEntries selects DefaultMaxEntries.
func NewHistory(maxEntries int, opts ...Option) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	h := &History{
		maxEntries: maxEntries,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute runs cmd against ed and records it as the newest undo step.
// The redo stack is discarded. A nil command, including a typed nil
// pointer, is ignored.
func (h *History) Execute(ed *editor.Editor, cmd Command) {
	if isNil(cmd) {
		return
	}

	cmd.Execute(ed)

	e := &entry{
		id:        uuid.New(),
		command:   cmd,
		timestamp: time.Now(),
	}
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil
	h.trim()

	h.log.Debug().
		Str("id", e.id.String()).
		Str("command", cmd.Description()).
		Int("undo", len(h.undoStack)).
		Msg("execute")
}

// Undo reverses the newest undo step. It returns false if there is nothing
// to undo.
func (h *History) Undo(ed *editor.Editor) bool {
	if len(h.undoStack) == 0 {
		return false
	}

	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack[len(h.undoStack)-1] = nil
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	e.command.Undo(ed)
	h.redoStack = append(h.redoStack, e)

	h.log.Debug().Str("id", e.id.String()).Str("command", e.command.Description()).Msg("undo")
	return true
}

// Redo replays the most recently undone step. It returns false if there is
// nothing to redo.
func (h *History) Redo(ed *editor.Editor) bool {
	if len(h.redoStack) == 0 {
		return false
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack[len(h.redoStack)-1] = nil
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	e.command.Execute(ed)
	h.undoStack = append(h.undoStack, e)

	h.log.Debug().Str("id", e.id.String()).Str("command", e.command.Description()).Msg("redo")
	return true
}

// Clear drops both stacks without running any command.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// MaxEntries returns the undo depth limit.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// SetMaxEntries changes the undo depth limit, dropping the oldest entries
// if the stack is already deeper. Non-positive values are ignored.
func (h *History) SetMaxEntries(n int) {
	if n <= 0 {
		return
	}
	h.maxEntries = n
	h.trim()
}

// trim enforces maxEntries by removing the oldest undo entries.
func (h *History) trim() {
	excess := len(h.undoStack) - h.maxEntries
	if excess <= 0 {
		return
	}
	for _, e := range h.undoStack[:excess] {
		h.log.Debug().Str("id", e.id.String()).Str("command", e.command.Description()).Msg("evict")
	}
	h.undoStack = append([]*entry(nil), h.undoStack[excess:]...)
}

// PeekUndo returns info about the next undo step without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// PeekRedo returns info about the next redo step without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	if len(h.redoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].info(), true
}

// UndoInfo returns info about available undo steps, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.undoStack))
	for i, e := range h.undoStack {
		result[i] = e.info()
	}
	return result
}

// RedoInfo returns info about available redo steps. The last element is
// the next step Redo would replay.
func (h *History) RedoInfo() []OperationInfo {
	result := make([]OperationInfo, len(h.redoStack))
	for i, e := range h.redoStack {
		result[i] = e.info()
	}
	return result
}

func isNil(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return true
	case *InsertCommand:
		return c == nil
	case *DeleteCommand:
		return c == nil
	}
	return false
}
