package scaffold

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/tstyche/create-tstyche/internal/configfile"
	"github.com/tstyche/create-tstyche/internal/console"
	"github.com/tstyche/create-tstyche/internal/installer"
	"github.com/tstyche/create-tstyche/internal/pkgmanager"
	"github.com/tstyche/create-tstyche/internal/project"
)

// ExamplesQuestion is asked before copying the example bundle.
const ExamplesQuestion = "Add example test files?"

// State is where a run stopped. Every state except Failed is a successful exit.
type State int

const (
	StoppedAtPrecondition State = iota
	StoppedAfterDecline
	Completed
	// Failed is returned together with a non-nil error.
	Failed
)

func (s State) String() string {
	switch s {
	case StoppedAtPrecondition:
		return "stopped at precondition"
	case StoppedAfterDecline:
		return "stopped after declining examples"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Files is the filesystem surface the Scaffolder writes through.
// project.FS is the real implementation.
type Files interface {
	Exists(path string) bool
	WriteIfAbsent(path string, data []byte) (project.Outcome, error)
	CopyFS(src fs.FS, dst string) error
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Scaffolder holds everything one run needs. All fields except Logger are
// required.
type Scaffolder struct {
	Target    project.Target
	Manager   pkgmanager.Manager
	Package   string // npm package name, e.g. "tstyche"
	Tag       string // dist tag, "latest" or "next"
	Installer installer.Installer
	Files     Files
	Confirmer Confirmer
	Examples  fs.FS
	Console   *console.Console
	Logger    *slog.Logger
}

// PackageSpec returns the package with its dist tag, e.g. "tstyche@next".
func (s *Scaffolder) PackageSpec() string {
	return s.Package + "@" + s.Tag
}

func (s *Scaffolder) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// Run executes the steps in order. The only errors returned are failures to
// write the config file or to copy the examples, and they come with Failed;
// everything else is reported on the console and ends the run normally.
func (s *Scaffolder) Run(ctx context.Context) (State, error) {
	log := s.logger().With(slog.String("dir", s.Target.Dir), slog.String("manager", s.Manager.String()))

	if !s.Files.Exists(s.Target.Manifest) {
		s.reportMissingManifest()
		log.Debug("manifest not found", slog.String("path", s.Target.Manifest))
		return StoppedAtPrecondition, nil
	}

	s.install(ctx, log)
	s.Console.ErrorBlank()

	if err := s.writeConfig(log); err != nil {
		return Failed, err
	}
	s.Console.InfoBlank()

	addExamples, err := s.Confirmer.Confirm(ExamplesQuestion)
	if err != nil {
		log.Warn("reading answer failed, treating it as no", slog.Any("error", err))
	}
	s.Console.InfoBlank()

	if !addExamples {
		return StoppedAfterDecline, nil
	}

	if err := s.Files.CopyFS(s.Examples, s.Target.ExamplesDir); err != nil {
		return Failed, errors.Wrap(err, "adding example test files")
	}
	s.Console.Infof("%s Example test files were written to %s.", console.Green("+"), console.Gray(s.Target.ExamplesDir))
	s.Console.InfoBlank()

	s.printGuidance()
	return Completed, nil
}

func (s *Scaffolder) reportMissingManifest() {
	s.Console.Errorf("%s Cannot not find '%s' in %s",
		console.Red("Error:"), filepath.Base(s.Target.Manifest), console.Gray(s.Target.Dir))

	if s.Manager.Known() {
		s.Console.Errorf("To create one, run %s.", console.Blue(s.Manager.InitCommand()))
	}

	s.Console.ErrorBlank()
}

// install adds the dependency. The installer's outcome is deliberately not
// acted on: a failed install is only visible in the debug log.
func (s *Scaffolder) install(ctx context.Context, log *slog.Logger) {
	if !s.Manager.Known() {
		s.Console.Errorf("%s Failed to install the '%s' package.", console.Red("× fail"), s.Package)
		s.Console.ErrorBlank()
		s.Console.Errorf("%s Unknown package manager. Try installing manually.", console.Red("Error:"))
		return
	}

	spec := s.PackageSpec()
	log.Debug("installing", slog.String("command", s.Manager.AddDevCommand(spec)))

	if err := s.Installer.Install(ctx, s.Manager, spec); err != nil {
		log.Debug("install failed", slog.Any("error", err))
	}

	s.Console.Infof("%s The %s package was installed.", console.Green("+"), console.Gray(spec))
}

func (s *Scaffolder) writeConfig(log *slog.Logger) error {
	outcome, err := s.Files.WriteIfAbsent(s.Target.ConfigFile, configfile.Contents())
	if err != nil {
		return errors.Wrap(err, "writing config file")
	}

	switch outcome {
	case project.Skipped:
		s.Console.Infof("%s Config file already exists in %s.", console.Yellow("- skip"), console.Gray(s.Target.Dir))
		s.checkExistingConfig(log)
	case project.Written:
		s.Console.Infof("%s Config file was written to %s.", console.Green("+"), console.Gray(s.Target.ConfigFile))
	}
	return nil
}

// checkExistingConfig warns about a user's config that tstyche would reject.
// The file itself is left untouched.
func (s *Scaffolder) checkExistingConfig(log *slog.Logger) {
	result, err := configfile.ValidateFile(s.Target.ConfigFile)
	if errors.Is(err, configfile.ErrMalformed) {
		s.Console.Errorf("%s Existing config file is not valid JSON: %s", console.Yellow("! warn"), err)
		return
	}
	if err != nil {
		log.Debug("existing config not checked", slog.Any("error", err))
		return
	}
	if result.Valid {
		return
	}

	noun := "issues"
	if len(result.Issues) == 1 {
		noun = "issue"
	}
	s.Console.Errorf("%s Existing config file has %d %s: %s",
		console.Yellow("! warn"), len(result.Issues), noun, joinIssues(result.Issues))
}

func joinIssues(issues []configfile.ValidationIssue) string {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}
