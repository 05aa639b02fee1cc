// Package installer adds the dev dependency to the project by running the
// detected package manager.
package installer

import (
	"context"
	"io"
	"os/exec"

	"github.com/cockroachdb/errors"

	"github.com/tstyche/create-tstyche/internal/pkgmanager"
)

// Installer adds pkg as a dev dependency using package manager m.
type Installer interface {
	Install(ctx context.Context, m pkgmanager.Manager, pkg string) error
}

// Exec runs `<manager> add -D <pkg>` as a subprocess in Dir. Output is
// suppressed; Stdout and Stderr can be set for testing and default to
// io.Discard.
type Exec struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs the add command and waits for it to exit.
func (e *Exec) Install(ctx context.Context, m pkgmanager.Manager, pkg string) error {
	if !m.Known() {
		return errors.New("no package manager to install with")
	}

	bin, err := exec.LookPath(m.String())
	if err != nil {
		return errors.Wrapf(err, "locating %s", m)
	}

	cmd := exec.CommandContext(ctx, bin, m.AddDevArgs(pkg)...)
	cmd.Dir = e.Dir
	cmd.Stdout = orDiscard(e.Stdout)
	cmd.Stderr = orDiscard(e.Stderr)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return errors.Newf("%s exited with code %d", m.AddDevCommand(pkg), exitErr.ExitCode())
		}
		return errors.Wrapf(err, "running %s", m.AddDevCommand(pkg))
	}
	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
