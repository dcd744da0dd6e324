package session

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/dshills/lineedit/internal/config"
)

// Clipboard stores text for cut, copy, and paste.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// MemoryClipboard is an in-process clipboard.
type MemoryClipboard struct {
	text string
}

// Read returns the stored text.
func (c *MemoryClipboard) Read() (string, error) {
	return c.text, nil
}

// Write replaces the stored text.
func (c *MemoryClipboard) Write(text string) error {
	c.text = text
	return nil
}

// Clear empties the clipboard.
func (c *MemoryClipboard) Clear() {
	c.text = ""
}

// Empty reports whether the clipboard holds no text.
func (c *MemoryClipboard) Empty() bool {
	return c.text == ""
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// Read returns the system clipboard text.
func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the system clipboard text.
func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// NewClipboard returns the clipboard for a provider name.
func NewClipboard(provider string) (Clipboard, error) {
	switch provider {
	case "", config.ClipboardMemory:
		return &MemoryClipboard{}, nil
	case config.ClipboardSystem:
		if clipboard.Unsupported {
			return nil, ErrClipboardUnavailable
		}
		return SystemClipboard{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClipboard, provider)
	}
}
