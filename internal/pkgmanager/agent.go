package pkgmanager

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Agent is the parsed form of a package manager user agent.
type Agent struct {
	Manager Manager
	// Version is nil when the user agent carries no parseable version.
	Version *semver.Version
}

// ParseAgent classifies userAgent and extracts the version from its
// "<manager>/<version>" token, e.g. "pnpm/9.1.0 npm/? node/v20.11.0 linux x64".
func ParseAgent(userAgent string) Agent {
	agent := Agent{Manager: Resolve(userAgent)}
	if !agent.Manager.Known() {
		return agent
	}

	prefix := agent.Manager.String() + "/"
	for _, field := range strings.Fields(userAgent) {
		raw, ok := strings.CutPrefix(field, prefix)
		if !ok {
			continue
		}
		if v, err := semver.NewVersion(raw); err == nil {
			agent.Version = v
		}
		break
	}
	return agent
}

// DetectAgent reads the user agent from the named environment variable
// through getenv (usually os.Getenv) and parses it. An empty envVar means
// DefaultUserAgentEnv.
func DetectAgent(getenv func(string) string, envVar string) Agent {
	if envVar == "" {
		envVar = DefaultUserAgentEnv
	}
	return ParseAgent(getenv(envVar))
}

// String renders the agent as "<manager>@<version>", or just the manager name
// when the version is unknown.
func (a Agent) String() string {
	if a.Version == nil {
		return a.Manager.String()
	}
	return a.Manager.String() + "@" + a.Version.String()
}
