package domain

// ResetKind names the reason a whole rebuild was forced.
type ResetKind string

const (
	// ResetClearRequested is set when the user asked for a clean rebuild.
	ResetClearRequested ResetKind = "clear-requested"
	// ResetNoPreviousState is set when no build state was found.
	ResetNoPreviousState ResetKind = "no-previous-state"
	// ResetIncompatibleState is set when the build state was written by another version or is corrupt.
	ResetIncompatibleState ResetKind = "incompatible-state"
	// ResetPlatformChanged is set when the host platform differs from the previous build.
	ResetPlatformChanged ResetKind = "platform-changed"
	// ResetConfigChanged is set when the configuration differs from the previous build.
	ResetConfigChanged ResetKind = "config-changed"
)

// ResetReason is one cause of a whole rebuild.
type ResetReason struct {
	Kind   ResetKind
	Detail string
}

// RebuildDecision classifies every source seen in either build state.
// The four path sets are disjoint and sorted.
type RebuildDecision struct {
	Added      []string
	Changed    []string
	Removed    []string
	Unaffected []string
	Resets     []ResetReason
}

// WholeReset reports whether every artifact must be discarded.
func (d RebuildDecision) WholeReset() bool {
	return len(d.Resets) > 0
}

// Stale returns the sources that need compiling based on classification alone.
func (d RebuildDecision) Stale() []string {
	out := make([]string, 0, len(d.Added)+len(d.Changed))
	out = append(out, d.Added...)
	return append(out, d.Changed...)
}
