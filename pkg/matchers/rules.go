package matchers

import (
	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// NewExactRule builds a rule matching the given folder name exactly
// (case-insensitive)
func NewExactRule(pattern string, exclude bool) (types.SelectionRule, error) {
	if pattern == "" {
		return types.SelectionRule{}, liberrors.New(liberrors.ErrInvalidRule,
			"exact rule requires a non-empty pattern")
	}
	return types.SelectionRule{
		Engine:  types.EngineExact,
		Pattern: pattern,
		Exclude: exclude,
		Matcher: NewExactMatcher(pattern),
	}, nil
}

// NewWildcardRule builds a rule matching the given *-wildcard pattern
func NewWildcardRule(pattern string, exclude bool) (types.SelectionRule, error) {
	matcher, err := NewWildcardMatcher(pattern)
	if err != nil {
		return types.SelectionRule{}, err
	}
	return types.SelectionRule{
		Engine:  types.EngineWildcard,
		Pattern: pattern,
		Exclude: exclude,
		Matcher: matcher,
	}, nil
}

// NewRegexRule builds a rule matching the given regular expression
func NewRegexRule(pattern string, exclude bool) (types.SelectionRule, error) {
	matcher, err := NewRegexMatcher(pattern)
	if err != nil {
		return types.SelectionRule{}, err
	}
	return types.SelectionRule{
		Engine:  types.EngineRegex,
		Pattern: pattern,
		Exclude: exclude,
		Matcher: matcher,
	}, nil
}

// NewPredicateRule builds a rule matching folders accepted by the given
// function
func NewPredicateRule(predicate func(string) bool, exclude bool) (types.SelectionRule, error) {
	matcher, err := NewPredicateMatcher(predicate)
	if err != nil {
		return types.SelectionRule{}, err
	}
	return types.SelectionRule{
		Engine:    types.EnginePredicate,
		Predicate: predicate,
		Exclude:   exclude,
		Matcher:   matcher,
	}, nil
}

// NewRule builds a rule for the named engine. Predicate rules cannot be
// built through this path; they need a function, not a pattern.
func NewRule(engine types.MatchEngine, pattern string, exclude bool) (types.SelectionRule, error) {
	switch engine {
	case types.EngineExact:
		return NewExactRule(pattern, exclude)
	case types.EngineWildcard:
		return NewWildcardRule(pattern, exclude)
	case types.EngineRegex:
		return NewRegexRule(pattern, exclude)
	case types.EnginePredicate:
		return types.SelectionRule{}, liberrors.New(liberrors.ErrInvalidRule,
			"predicate rules require a predicate function, not a pattern")
	default:
		return types.SelectionRule{}, liberrors.Newf(liberrors.ErrInvalidRule,
			"unknown match engine %q", engine)
	}
}
