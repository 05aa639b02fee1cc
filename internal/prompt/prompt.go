// Package prompt asks single yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/tstyche/create-tstyche/internal/console"
)

// Moves the cursor one line up and erases that line.
const rewriteLine = "\x1b[1A\x1b[0K"

// ParseAnswer reports whether s is an affirmative answer. Anything other than
// "y" or "yes" (case and surrounding space ignored) is a no, including an
// empty line.
func ParseAnswer(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Prompter reads answers from In and renders questions to Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints question with a [y/N] hint, waits for exactly one line and
// then rewrites the prompt line in place so it shows the resolved "yes" or
// "no". In is closed once the line has been read when it implements
// io.Closer. There is no timeout: without input Confirm blocks.
func (p *Prompter) Confirm(question string) (bool, error) {
	if closer, ok := p.In.(io.Closer); ok {
		defer closer.Close()
	}

	questionText := fmt.Sprintf("%s %s %s", console.Green("?"), question, console.Gray("[y/N] · "))
	fmt.Fprint(p.Out, questionText)

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Wrap(err, "reading answer")
	}

	answer := ParseAnswer(line)

	fmt.Fprint(p.Out, rewriteLine)
	fmt.Fprint(p.Out, questionText)
	if answer {
		fmt.Fprintln(p.Out, "yes")
	} else {
		fmt.Fprintln(p.Out, "no")
	}

	return answer, nil
}
