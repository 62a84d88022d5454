// Package config loads and watches the pane configuration. Loaders
// parse a settings file into a generic map; Config applies the map on
// top of the defaults.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileSystem is an abstraction for file system operations, allowing
// tests to use in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// LoaderForPath picks a loader by file extension: .toml, .yaml/.yml,
// or .lua. Unknown extensions fall back to TOML.
func LoaderForPath(path string) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLLoader(path)
	case ".lua":
		return NewLuaLoader(path)
	default:
		return NewTOMLLoader(path)
	}
}

// Load reads the file at path with the loader matching its extension
// and applies it on top of the defaults.
func Load(path string) (Config, error) {
	m, err := LoaderForPath(path).Load()
	if err != nil {
		return Default(), err
	}
	return FromMap(m), nil
}
