package session

import (
	"errors"
	"fmt"
)

// Standard errors returned by the session package.
var (
	// ErrFileTooLarge indicates the file exceeds the maximum size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrBinaryFile indicates the file appears to be binary.
	ErrBinaryFile = errors.New("binary file")

	// ErrNoPath indicates a save was requested before any path was known.
	ErrNoPath = errors.New("no file path")

	// ErrUnknownClipboard indicates an unrecognized clipboard provider name.
	ErrUnknownClipboard = errors.New("unknown clipboard provider")

	// ErrClipboardUnavailable indicates the system clipboard cannot be used
	// on this platform.
	ErrClipboardUnavailable = errors.New("system clipboard unavailable")
)

// PathError represents an error associated with a file path.
type PathError struct {
	Op   string // Operation that failed (open, save)
	Path string // File path
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}
