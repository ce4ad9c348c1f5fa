// Package build holds build-time information.
package build

import "fmt"

// Version is the application version. It is also written into the build
// state, so a state produced by another version forces a full rebuild.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"

// Commit is the source revision, set by linker flags.
var Commit = "none"

// Date is the build date, set by linker flags.
var Date = "unknown"

// String describes the build as printed by the version command.
func String() string {
	return fmt.Sprintf("forge version %s (commit: %s, date: %s)", Version, Commit, Date)
}
