// Where: internal/version/version.go
// What: Version reporting for the insights CLI.
// Why: Identify the binary and exact build when invoked from framework hooks.
package version

import (
	"fmt"
	"runtime/debug"
)

// toolName prefixes the reported version so output captured by framework
// tooling shows which plugin produced it.
const toolName = "lambda-insights"

// GetVersion returns the tool name followed by the build identifier.
func GetVersion() string {
	return toolName + " " + buildID()
}

// buildID derives an identifier from build info: the short VCS revision,
// with "(dirty)" appended when the tree was modified. Returns "dev" when
// build info is unavailable.
func buildID() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
