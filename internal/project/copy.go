package project

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// excludedNames are never copied out of a bundle.
var excludedNames = map[string]bool{
	".DS_Store": true,
}

// CopyFS recursively copies every directory and regular file of src into dst,
// creating dst when needed. Existing files in dst with the same relative path
// are overwritten; others are left alone. The first failure aborts the copy.
func CopyFS(src fs.FS, dst string) error {
	if err := copyDir(src, ".", dst); err != nil {
		return errors.Wrapf(err, "copying files to %s", dst)
	}
	return nil
}

// copyDir copies the directory dir of src to dst.
func copyDir(src fs.FS, dir, dst string) error {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	entries, err := fs.ReadDir(src, dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if shouldExclude(entry.Name()) {
			continue
		}

		srcPath := path.Join(dir, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(src, srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(src, srcPath, dstPath); err != nil {
				return err
			}
		}
		// Symlinks and other special files are skipped.
	}

	return nil
}

// copyFile copies a single file. Embedded files report 0444, so the mode is
// normalized to 0644 unless the source is executable.
func copyFile(src fs.FS, name, dst string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := fs.Stat(src, name); err == nil && info.Mode().Perm()&0111 != 0 {
		mode = 0755
	}

	return os.WriteFile(dst, data, mode)
}

// shouldExclude returns true if the name should be excluded during copy.
func shouldExclude(name string) bool {
	return excludedNames[name]
}
