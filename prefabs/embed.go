package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Files holds the prefabs compiled into the binary. A file at the same
// relative path under Dir on disk takes precedence over the embedded copy.
//
//go:embed *.yaml scripts/*.tengo
var Files embed.FS

// Dir is the on-disk prefab directory, relative to the working directory.
const Dir = "prefabs"

// Load reads a prefab by its path relative to Dir.
func Load(name string) ([]byte, error) {
	return read(relative(name))
}

// LoadScript reads a tengo script. The scripts/ prefix and .tengo suffix are
// optional.
func LoadScript(name string) ([]byte, error) {
	return read(scriptPath(name))
}

// LoadFile reads a prefab from an explicit path, falling back to the embedded
// file with the same base name.
func LoadFile(p string) ([]byte, error) {
	data, err := os.ReadFile(p)
	if err == nil {
		return data, nil
	}
	if embedded, embErr := fs.ReadFile(Files, filepath.Base(p)); embErr == nil {
		return embedded, nil
	}
	return nil, err
}

func read(rel string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return fs.ReadFile(Files, rel)
}

func relative(name string) string {
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), Dir+"/")
}

func scriptPath(name string) string {
	s := strings.TrimPrefix(relative(name), "scripts/")
	if path.Ext(s) != ".tengo" {
		s += ".tengo"
	}
	return path.Join("scripts", s)
}
