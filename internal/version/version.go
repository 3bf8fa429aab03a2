package version

import "github.com/fatih/color"

// Version information for the verdant CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Green-on-green scheme, one shade per version segment.
	versionMajorColor = color.New(color.FgGreen, color.Bold)
	versionMinorColor = color.New(color.FgHiGreen, color.Bold)
	versionPatchColor = color.New(color.FgCyan, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
