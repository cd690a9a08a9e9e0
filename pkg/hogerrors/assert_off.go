//go:build !ci

package hogerrors

const DebugAssertionsEnabled = false

// DebugAssertf does nothing in non-CI builds.
func DebugAssertf(condition func() bool, format string, args ...any) {
}
