// Package loader reads lineedit configuration sources into generic maps.
//
// File loaders parse TOML or YAML from an afero file system; the
// environment loader maps LINEEDIT_* variables onto setting paths. The
// results are merged with DeepMerge, later sources overriding earlier ones.
package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileLoader is the interface for loaders that read from files.
type FileLoader interface {
	Loader
	// LoadFrom reads configuration from a specific path.
	LoadFrom(path string) (map[string]any, error)
}

// ReaderLoader is the interface for loaders that read from io.Reader.
type ReaderLoader interface {
	// LoadFromReader reads configuration from a reader.
	LoadFromReader(r io.Reader) (map[string]any, error)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() afero.Fs {
	return afero.NewOsFs()
}

// ForPath returns the file loader matching path's extension.
func ForPath(fs afero.Fs, path string) (FileLoader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return NewTOMLLoaderWithFS(fs, path), nil
	case ".yaml", ".yml":
		return NewYAMLLoaderWithFS(fs, path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// readFile reads path from fs. A missing file yields nil data and no error.
func readFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if exists, _ := afero.Exists(fs, path); !exists {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return data, nil
}
