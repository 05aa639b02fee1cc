package project

import "io/fs"

// FS performs the writes against the real filesystem.
type FS struct{}

// Exists reports whether path exists.
func (FS) Exists(path string) bool { return Exists(path) }

// WriteIfAbsent calls the package-level WriteIfAbsent.
func (FS) WriteIfAbsent(path string, data []byte) (Outcome, error) {
	return WriteIfAbsent(path, data)
}

// CopyFS calls the package-level CopyFS.
func (FS) CopyFS(src fs.FS, dst string) error { return CopyFS(src, dst) }
