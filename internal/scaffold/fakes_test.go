package scaffold

import (
	"context"
	"errors"
	"io/fs"

	"github.com/tstyche/create-tstyche/internal/pkgmanager"
	"github.com/tstyche/create-tstyche/internal/project"
)

type installCall struct {
	Manager pkgmanager.Manager
	Package string
}

// recordingInstaller records every Install call and returns err.
type recordingInstaller struct {
	calls []installCall
	err   error
}

func (r *recordingInstaller) Install(_ context.Context, m pkgmanager.Manager, pkg string) error {
	r.calls = append(r.calls, installCall{Manager: m, Package: pkg})
	return r.err
}

type copyCall struct {
	Src fs.FS
	Dst string
}

// recordingFiles is an in-memory Files. Paths in existing are reported as
// present; writes are recorded and make the path present.
type recordingFiles struct {
	existing map[string]bool
	writes   map[string][]byte
	copies   []copyCall
	copyErr  error
	writeErr error
}

func newRecordingFiles(existing ...string) *recordingFiles {
	f := &recordingFiles{
		existing: make(map[string]bool),
		writes:   make(map[string][]byte),
	}
	for _, p := range existing {
		f.existing[p] = true
	}
	return f
}

func (f *recordingFiles) Exists(path string) bool { return f.existing[path] }

func (f *recordingFiles) WriteIfAbsent(path string, data []byte) (project.Outcome, error) {
	if f.writeErr != nil {
		return project.Written, f.writeErr
	}
	if f.existing[path] {
		return project.Skipped, nil
	}
	f.writes[path] = data
	f.existing[path] = true
	return project.Written, nil
}

func (f *recordingFiles) CopyFS(src fs.FS, dst string) error {
	f.copies = append(f.copies, copyCall{Src: src, Dst: dst})
	return f.copyErr
}

// scriptedConfirmer answers with answer and counts the questions asked.
type scriptedConfirmer struct {
	answer    bool
	err       error
	questions []string
}

func (c *scriptedConfirmer) Confirm(question string) (bool, error) {
	c.questions = append(c.questions, question)
	return c.answer, c.err
}

var errDiskFull = errors.New("disk full")
