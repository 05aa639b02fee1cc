package project

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Names are the project-relative file and directory names of a Target.
type Names struct {
	Manifest    string
	ConfigFile  string
	ExamplesDir string
}

// Target holds the absolute paths of one scaffolding run. It is resolved once
// and read-only afterwards.
type Target struct {
	Dir         string
	Manifest    string
	ConfigFile  string
	ExamplesDir string
}

// NewTarget resolves names against dir.
func NewTarget(dir string, names Names) (Target, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Target{}, errors.Wrapf(err, "resolving project directory %s", dir)
	}
	return Target{
		Dir:         abs,
		Manifest:    filepath.Join(abs, names.Manifest),
		ConfigFile:  filepath.Join(abs, names.ConfigFile),
		ExamplesDir: filepath.Join(abs, names.ExamplesDir),
	}, nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
