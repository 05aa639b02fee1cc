package project

import (
	"os"

	"github.com/cockroachdb/errors"
)

// Outcome is the result of WriteIfAbsent.
type Outcome int

const (
	Written Outcome = iota
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// WriteIfAbsent writes data to path unless something already exists there.
// An existing file is never touched. The check and the write are not atomic;
// that is acceptable for a single interactive run.
func WriteIfAbsent(path string, data []byte) (Outcome, error) {
	if Exists(path) {
		return Skipped, nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Written, errors.Wrapf(err, "writing %s", path)
	}
	return Written, nil
}
