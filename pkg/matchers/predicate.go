package matchers

import (
	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// PredicateMatcher matches folder names with a caller-supplied function
type PredicateMatcher struct {
	predicate func(string) bool
}

// NewPredicateMatcher creates a matcher backed by the given function
func NewPredicateMatcher(predicate func(string) bool) (*PredicateMatcher, error) {
	if predicate == nil {
		return nil, liberrors.New(liberrors.ErrInvalidRule, "predicate rule requires a non-nil predicate")
	}
	return &PredicateMatcher{predicate: predicate}, nil
}

// Name returns the engine name of this matcher
func (m *PredicateMatcher) Name() string {
	return string(types.EnginePredicate)
}

// Description returns a human-readable description of this matcher
func (m *PredicateMatcher) Description() string {
	return "Matches folders accepted by a caller-supplied predicate"
}

// Match returns the candidates the predicate accepts, in input order
func (m *PredicateMatcher) Match(candidates []string) []string {
	var matched []string
	for _, name := range candidates {
		if m.predicate(name) {
			matched = append(matched, name)
		}
	}
	return matched
}
