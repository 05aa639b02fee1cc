// Package examples embeds the example test files offered to the user.
package examples

import (
	"embed"
	"io/fs"
)

//go:embed files
var files embed.FS

// FS returns the example bundle rooted at its top directory, so copying it
// reproduces the bundle's relative paths.
func FS() fs.FS {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		panic(err)
	}
	return sub
}
