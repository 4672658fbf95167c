package types

// MatchEngine identifies the matching strategy a selection rule uses
type MatchEngine string

const (
	// EnginePredicate matches candidates with a caller-supplied function
	EnginePredicate MatchEngine = "predicate"

	// EngineExact matches candidates equal to the pattern, case-insensitively
	EngineExact MatchEngine = "exact"

	// EngineWildcard matches candidates against a *-wildcard pattern
	EngineWildcard MatchEngine = "wildcard"

	// EngineRegex matches candidates against a regular expression
	EngineRegex MatchEngine = "regex"
)

// Matcher filters a candidate folder-name list down to the names it matches.
// Implementations must preserve input order and must not deduplicate.
type Matcher interface {
	// Name returns the engine name of this matcher
	Name() string

	// Description returns a human-readable description of what this matcher matches
	Description() string

	// Match returns the subset of candidates this matcher accepts, in input order
	Match(candidates []string) []string
}
