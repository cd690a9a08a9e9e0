// Package version holds the build version information stamped into the
// binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is this program's version string, set via ldflags at release time.
var Version string

// UsageVersion introspects the process debug data for Go modules to return a
// version string.
func UsageVersion(includeDeps bool) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("failed to read BuildInfo because the program was compiled with " + runtime.Version())
	}

	if Version == "" {
		// The version wasn't set by ldflags, so fall back to the Go module
		// version. This is almost always just "(devel)".
		Version = bi.Main.Version
	}

	if !includeDeps {
		if Version == "(devel)" {
			return "hogwash development build (unknown exact version)"
		}
		return "hogwash " + Version
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", bi.Path, Version)
	for _, dep := range bi.Deps {
		fmt.Fprintf(&b, "\n\t%s %s", dep.Path, dep.Version)
	}
	return b.String()
}
