package cli

import "fmt"

// versionString renders the build info shown by --version.
func versionString() string {
	if buildCommit == "" && buildDate == "" {
		return buildVersion
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, buildCommit, buildDate)
}
