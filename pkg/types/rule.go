package types

import "fmt"

// SelectionRule pairs a matching strategy with an inclusion/exclusion flag.
// Rules are immutable once constructed; use the constructors in pkg/matchers,
// which compile and validate patterns before any launch attempt.
type SelectionRule struct {
	// Engine identifies the matching strategy
	Engine MatchEngine

	// Pattern is the match pattern; empty when Engine is EnginePredicate
	Pattern string

	// Predicate is the match function; nil unless Engine is EnginePredicate
	Predicate func(string) bool

	// Exclude marks this as an exclusion rule: matched folders are removed
	// from the selection instead of added
	Exclude bool

	// Matcher is the compiled matcher for this rule
	Matcher Matcher
}

// String returns a short description of the rule, suitable for diagnostics
func (r SelectionRule) String() string {
	verb := "include"
	if r.Exclude {
		verb = "exclude"
	}
	if r.Engine == EnginePredicate {
		return fmt.Sprintf("%s %s", verb, r.Engine)
	}
	return fmt.Sprintf("%s %s %q", verb, r.Engine, r.Pattern)
}
