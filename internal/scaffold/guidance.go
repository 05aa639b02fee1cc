package scaffold

import "github.com/tstyche/create-tstyche/internal/console"

// Suggestion is one next-step command shown after the examples are added.
type Suggestion struct {
	Args        string // appended to "<exec> tstyche"
	Description string
}

// Suggestions are printed in this order.
var Suggestions = []Suggestion{
	{"", "Run all tests."},
	{"examples/overload", "Only run the matching test file."},
	{"--target '5.3,5.5.2,>=5.7'", "Test against specific versions of TypeScript."},
	{"--watch", "Run all tests in watch mode."},
}

// Command renders the suggestion for the given executor prefix.
func (sg Suggestion) Command(exec, pkg string) string {
	cmd := exec + " " + pkg
	if sg.Args != "" {
		cmd += " " + sg.Args
	}
	return cmd
}

// printGuidance needs an executor prefix, so it prints nothing when the
// package manager is unknown.
func (s *Scaffolder) printGuidance() {
	exec := s.Manager.ExecCommand()
	if exec == "" {
		return
	}

	s.Console.Infof("%s Try out the following commands:", console.Blue("i"))
	s.Console.InfoBlank()

	for _, sg := range Suggestions {
		s.Console.Infof("  %s", console.Blue(sg.Command(exec, s.Package)))
		s.Console.Infof("  %s", sg.Description)
		s.Console.InfoBlank()
	}
}
