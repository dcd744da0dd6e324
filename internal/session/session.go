package session

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/logging"
)

// Session is one open document with its clipboard and file binding.
type Session struct {
	id   uuid.UUID
	eng  *engine.Engine
	clip Clipboard
	fs   afero.Fs
	log  zerolog.Logger

	path        string
	maxFileSize int64
	cleanRev    engine.RevisionID

	engineOpts []engine.Option
}

// Option configures a Session.
type Option func(*Session)

// WithFS sets the file system documents are read from and written to.
func WithFS(fs afero.Fs) Option {
	return func(s *Session) {
		s.fs = fs
	}
}

// WithClipboard sets the clipboard.
func WithClipboard(c Clipboard) Option {
	return func(s *Session) {
		s.clip = c
	}
}

// WithLogger sets the logger. The engine history logs through it too.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

// WithMaxFileSize sets the largest file Open accepts.
func WithMaxFileSize(n int64) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxFileSize = n
		}
	}
}

// WithEngineOptions passes options through to the engine.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(s *Session) {
		s.engineOpts = append(s.engineOpts, opts...)
	}
}

// New creates a session holding an empty document.
func New(opts ...Option) *Session {
	s := &Session{
		id:          uuid.New(),
		clip:        &MemoryClipboard{},
		fs:          afero.NewOsFs(),
		log:         zerolog.Nop(),
		maxFileSize: config.DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = logging.WithComponent(s.log, "session").With().Str("session", s.id.String()).Logger()

	engineOpts := append([]engine.Option{engine.WithLogger(s.log)}, s.engineOpts...)
	s.eng = engine.New(engineOpts...)
	s.engineOpts = nil
	s.markClean()

	return s
}

// FromConfig creates a session using the clipboard, file size limit, undo
// depth, and tab text from cfg. Extra options are applied afterwards.
func FromConfig(cfg *config.Config, opts ...Option) (*Session, error) {
	clip, err := NewClipboard(cfg.Clipboard.Provider)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithClipboard(clip),
		WithMaxFileSize(cfg.Files.MaxSize),
		WithEngineOptions(
			engine.WithMaxUndoEntries(cfg.History.MaxEntries),
			engine.WithTabText(cfg.Editor.TabText),
		),
	}
	return New(append(base, opts...)...), nil
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Engine returns the editing engine.
func (s *Session) Engine() *engine.Engine {
	return s.eng
}

// Clipboard returns the clipboard.
func (s *Session) Clipboard() Clipboard {
	return s.clip
}

// Path returns the file the document was last opened from or saved to.
func (s *Session) Path() string {
	return s.path
}

// ============================================================================
// Files
// ============================================================================

// Open replaces the document with the contents of path. The undo history
// is cleared.
func (s *Session) Open(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return &PathError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return &PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	if info.Size() > s.maxFileSize {
		return &PathError{Op: "open", Path: path, Err: ErrFileTooLarge}
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return &PathError{Op: "open", Path: path, Err: err}
	}
	if isBinary(data) {
		return &PathError{Op: "open", Path: path, Err: ErrBinaryFile}
	}

	s.eng.Load(string(data))
	s.path = path
	s.markClean()

	s.log.Info().Str("path", path).Int("bytes", len(data)).Int("lines", s.eng.LineCount()).Msg("opened")
	return nil
}

// Reload re-reads the current file.
func (s *Session) Reload() error {
	if s.path == "" {
		return ErrNoPath
	}
	return s.Open(s.path)
}

// Save writes the document to its current path.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	return s.SaveAs(s.path)
}

// SaveAs writes the document to path and makes it the current path.
func (s *Session) SaveAs(path string) error {
	text := s.eng.Text()
	if err := afero.WriteFile(s.fs, path, []byte(text), 0o644); err != nil {
		return &PathError{Op: "save", Path: path, Err: err}
	}

	s.path = path
	s.markClean()

	s.log.Info().Str("path", path).Int("bytes", len(text)).Msg("saved")
	return nil
}

// Modified reports whether the document changed since it was last opened
// or saved. Undoing back to the saved text still counts as modified.
func (s *Session) Modified() bool {
	return s.eng.RevisionID() != s.cleanRev
}

func (s *Session) markClean() {
	s.cleanRev = s.eng.RevisionID()
}

// isBinary reports whether content looks like binary data: a NUL byte, or
// more than 10% control characters, within the first 8KB.
func isBinary(content []byte) bool {
	sample := content[:min(len(content), 8192)]
	if len(sample) == 0 {
		return false
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' {
			nonText++
		}
	}
	return float64(nonText)/float64(len(sample)) > 0.1
}

// ============================================================================
// Clipboard
// ============================================================================

// Cut moves the selection to the clipboard. Without a selection it does
// nothing.
func (s *Session) Cut() error {
	text := s.eng.SelectedText()
	if text == "" {
		return nil
	}
	if err := s.clip.Write(text); err != nil {
		return fmt.Errorf("cut: %w", err)
	}
	s.eng.DeleteSelection()
	return nil
}

// Copy puts the selection on the clipboard. Without a selection it does
// nothing.
func (s *Session) Copy() error {
	text := s.eng.SelectedText()
	if text == "" {
		return nil
	}
	if err := s.clip.Write(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Paste inserts the clipboard text, replacing any selection. An empty
// clipboard does nothing.
func (s *Session) Paste() error {
	text, err := s.clip.Read()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	s.eng.Insert(text)
	return nil
}

// ============================================================================
// Editing
// ============================================================================

// Move moves the caret. With extend the selection grows to follow it;
// otherwise any selection is dropped.
func (s *Session) Move(dir Direction, extend bool) {
	c := s.eng.Cursor()
	switch dir {
	case Left:
		c.MoveLeft(extend)
	case Right:
		c.MoveRight(extend)
	case Up:
		c.MoveUp(extend)
	case Down:
		c.MoveDown(extend)
	case LineStart:
		c.MoveLineStart(extend)
	case LineEnd:
		c.MoveLineEnd(extend)
	case DocStart:
		c.MoveDocStart(extend)
	case DocEnd:
		c.MoveDocEnd(extend)
	}
}

// Type inserts text at the caret, replacing any selection.
func (s *Session) Type(text string) { s.eng.Type(text) }

// Backspace deletes the selection or the byte before the caret.
func (s *Session) Backspace() { s.eng.Backspace() }

// Enter splits the line at the caret.
func (s *Session) Enter() { s.eng.Enter() }

// Tab inserts the configured tab text.
func (s *Session) Tab() { s.eng.Tab() }

// SelectAll selects the whole document.
func (s *Session) SelectAll() { s.eng.SelectAll() }

// Undo reverses the last edit.
func (s *Session) Undo() bool { return s.eng.Undo() }

// Redo replays the last undone edit.
func (s *Session) Redo() bool { return s.eng.Redo() }

// Text returns the whole document.
func (s *Session) Text() string { return s.eng.Text() }

// CursorState returns a snapshot of the caret and selection.
func (s *Session) CursorState() engine.CursorState { return s.eng.CursorState() }
