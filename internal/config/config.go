package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tstyche/create-tstyche/internal/branding"
	"github.com/tstyche/create-tstyche/internal/pkgmanager"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by Load.
const (
	KeyUserAgentEnv = "user_agent_env"
	KeyPackage      = "package"
	KeyConfigFile   = "config_file"
	KeyExamplesDir  = "examples_dir"
	KeyManifestFile = "manifest_file"
	KeyLogLevel     = "log_level"
	KeyNext         = "next"
)

// Settings is the resolved configuration for one run.
type Settings struct {
	UserAgentEnv string // environment variable set by the invoking package manager
	Package      string // npm package to install
	ConfigFile   string // config file name, relative to the project
	ExamplesDir  string // examples destination, relative to the project
	ManifestFile string // project manifest whose presence gates the run
	LogLevel     slog.Level
	Next         bool // install the "next" dist tag instead of "latest"
}

// Tag returns the dist tag selected by the --next flag.
func (s *Settings) Tag() string {
	if s.Next {
		return "next"
	}
	return "latest"
}

// Dir returns the path to the user config directory (~/.create-tstyche/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the user config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyUserAgentEnv, pkgmanager.DefaultUserAgentEnv)
	v.SetDefault(KeyPackage, branding.PackageName())
	v.SetDefault(KeyConfigFile, "tstyche.config.json")
	v.SetDefault(KeyExamplesDir, "tstyche-examples")
	v.SetDefault(KeyManifestFile, "package.json")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyNext, false)
}

// Load resolves Settings. flags may be nil; when given, its "next" flag is
// bound so that an explicit --next wins over the environment.
func Load(flags *pflag.FlagSet) (*Settings, error) {
	return load(FilePath(), flags)
}

func load(configFile string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	// A missing config file is the common case.
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, errors.Wrapf(err, "reading config file %s", configFile)
	}

	if flags != nil {
		if f := flags.Lookup(KeyNext); f != nil {
			if err := v.BindPFlag(KeyNext, f); err != nil {
				return nil, errors.Wrap(err, "binding --next flag")
			}
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, errors.Wrapf(err, "invalid %s %q", KeyLogLevel, v.GetString(KeyLogLevel))
	}

	return &Settings{
		UserAgentEnv: v.GetString(KeyUserAgentEnv),
		Package:      v.GetString(KeyPackage),
		ConfigFile:   v.GetString(KeyConfigFile),
		ExamplesDir:  v.GetString(KeyExamplesDir),
		ManifestFile: v.GetString(KeyManifestFile),
		LogLevel:     level,
		Next:         v.GetBool(KeyNext),
	}, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
