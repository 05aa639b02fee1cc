package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/tstyche/create-tstyche/internal/branding"
	"github.com/tstyche/create-tstyche/internal/config"
	"github.com/tstyche/create-tstyche/internal/console"
	"github.com/tstyche/create-tstyche/internal/examples"
	"github.com/tstyche/create-tstyche/internal/installer"
	"github.com/tstyche/create-tstyche/internal/pkgmanager"
	"github.com/tstyche/create-tstyche/internal/project"
	"github.com/tstyche/create-tstyche/internal/prompt"
	"github.com/tstyche/create-tstyche/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Process collaborators, replaced in tests.
var (
	getenv       = os.Getenv
	getwd        = os.Getwd
	newInstaller = func(dir string) installer.Installer {
		return &installer.Exec{Dir: dir}
	}
	newConfirmer = func(cmd *cobra.Command) scaffold.Confirmer {
		return &prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	}
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` setup for an existing Node.js project.

Run it through your package manager from the directory holding package.json:

  npm create tstyche
  yarn create tstyche
  pnpm create tstyche

It installs the tstyche package as a dev dependency, writes a default
tstyche.config.json when none exists and offers to add example test files.`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScaffold,
	}

	cmd.Flags().Bool(config.KeyNext, false, "Install the 'next' distribution tag instead of 'latest'")
	cmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")
	return cmd
}

func runScaffold(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: settings.LogLevel}))

	cwd, err := getwd()
	if err != nil {
		return errors.Wrap(err, "getting current directory")
	}

	target, err := project.NewTarget(cwd, project.Names{
		Manifest:    settings.ManifestFile,
		ConfigFile:  settings.ConfigFile,
		ExamplesDir: settings.ExamplesDir,
	})
	if err != nil {
		return err
	}

	agent := pkgmanager.DetectAgent(getenv, settings.UserAgentEnv)
	logger.Debug("detected package manager", slog.String("agent", agent.String()))

	s := &scaffold.Scaffolder{
		Target:    target,
		Manager:   agent.Manager,
		Package:   settings.Package,
		Tag:       settings.Tag(),
		Installer: newInstaller(target.Dir),
		Files:     project.FS{},
		Confirmer: newConfirmer(cmd),
		Examples:  examples.FS(),
		Console:   console.New(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		Logger:    logger,
	}

	state, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}
	logger.Debug("done", slog.String("state", state.String()))
	return nil
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", console.Red("Error:"), err)
		return err
	}
	return nil
}
