package pkgmanager

import "strings"

// Manager identifies the invoking package manager.
type Manager int

const (
	// Unknown means no recognizable package manager launched the process.
	// It is a valid result, not an error.
	Unknown Manager = iota
	Npm
	Yarn
	Pnpm
)

// DefaultUserAgentEnv is the variable npm, yarn and pnpm all export to scripts.
const DefaultUserAgentEnv = "npm_config_user_agent"

// detectionOrder is the fixed priority in which substrings are matched. yarn
// and pnpm user agents may also mention npm, so npm goes last.
var detectionOrder = []Manager{Yarn, Pnpm, Npm}

// Resolve classifies a user-agent string.
func Resolve(userAgent string) Manager {
	if userAgent == "" {
		return Unknown
	}
	for _, m := range detectionOrder {
		if strings.Contains(userAgent, m.String()) {
			return m
		}
	}
	return Unknown
}

// String returns the executable name of the manager.
func (m Manager) String() string {
	switch m {
	case Npm:
		return "npm"
	case Yarn:
		return "yarn"
	case Pnpm:
		return "pnpm"
	default:
		return "unknown"
	}
}

// Known reports whether m is a recognized manager.
func (m Manager) Known() bool {
	return m != Unknown
}

// ExecCommand returns the prefix used to run a locally installed binary:
// npx for npm, the manager itself otherwise. Empty for Unknown.
func (m Manager) ExecCommand() string {
	switch m {
	case Npm:
		return "npx"
	case Yarn, Pnpm:
		return m.String()
	default:
		return ""
	}
}

// InitCommand returns the command that creates a package.json. Empty for Unknown.
func (m Manager) InitCommand() string {
	if !m.Known() {
		return ""
	}
	return m.String() + " init"
}

// AddDevArgs returns the arguments that add pkg as a dev dependency.
func (m Manager) AddDevArgs(pkg string) []string {
	return []string{"add", "-D", pkg}
}

// AddDevCommand returns the full add-dev-dependency command line for display.
func (m Manager) AddDevCommand(pkg string) string {
	if !m.Known() {
		return ""
	}
	return m.String() + " " + strings.Join(m.AddDevArgs(pkg), " ")
}
