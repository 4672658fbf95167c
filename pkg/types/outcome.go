package types

import "time"

// SelectionOutcome is the result of running the selection rules against the
// discovered mod folders. It is produced fresh per launch attempt and never
// mutated after construction.
type SelectionOutcome struct {
	// Selected holds the included mod names in insertion order, deduplicated
	Selected []string

	// Excluded holds the names removed by exclusion rules
	Excluded []string

	// UnmatchedRules holds every rule that matched nothing, in original rule order
	UnmatchedRules []SelectionRule
}

// OutcomeKind tags the terminal state a launch attempt reached
type OutcomeKind string

const (
	// OutcomeSuccess means the process ran and exited
	OutcomeSuccess OutcomeKind = "success"

	// OutcomeMissingCapability means the game descriptor was incomplete;
	// no I/O was performed
	OutcomeMissingCapability OutcomeKind = "missing_capability"

	// OutcomeNotInstalled means no executable was found for the requested
	// launch type
	OutcomeNotInstalled OutcomeKind = "not_installed"

	// OutcomeMissingMods means one or more selection rules matched nothing
	// and the missing-rules policy did not allow the launch to proceed
	OutcomeMissingMods OutcomeKind = "missing_mods"

	// OutcomeSelectionFailure means a configured search directory was
	// missing or unreadable, aborting the whole selection
	OutcomeSelectionFailure OutcomeKind = "selection_failure"

	// OutcomeProcessFailure means the external process could not be started
	OutcomeProcessFailure OutcomeKind = "process_failure"
)

// LaunchOutcome is the single, immutable result of a launch attempt.
// Kind determines which of the remaining fields are meaningful.
type LaunchOutcome struct {
	// Kind tags the terminal state
	Kind OutcomeKind

	// Message describes the failure; empty on success
	Message string

	// StartedAt and EndedAt bracket the external process lifetime; only set
	// on success
	StartedAt time.Time
	EndedAt   time.Time

	// Selected and Excluded carry the selection result for success and for
	// missing-mods diagnostics
	Selected []string
	Excluded []string

	// UnmatchedRules carries the never-satisfied rules for missing-mods
	// diagnostics
	UnmatchedRules []SelectionRule
}

// Succeeded reports whether the launch reached process exit
func (o LaunchOutcome) Succeeded() bool {
	return o.Kind == OutcomeSuccess
}
