package matchers

import (
	"fmt"
	"strings"

	"github.com/SierraSoftworks/bislib/pkg/types"
)

// ExactMatcher matches folder names equal to its pattern under
// case-insensitive comparison. Folder listings are case-preserving but the
// platforms these games ship on treat names case-insensitively, so "moda"
// matches "ModA".
type ExactMatcher struct {
	pattern string
}

// NewExactMatcher creates a matcher for the given folder name
func NewExactMatcher(pattern string) *ExactMatcher {
	return &ExactMatcher{pattern: pattern}
}

// Name returns the engine name of this matcher
func (m *ExactMatcher) Name() string {
	return string(types.EngineExact)
}

// Description returns a human-readable description of this matcher
func (m *ExactMatcher) Description() string {
	return fmt.Sprintf("Matches folders named %q (case-insensitive)", m.pattern)
}

// Match returns the candidates equal to the pattern, in input order
func (m *ExactMatcher) Match(candidates []string) []string {
	var matched []string
	for _, name := range candidates {
		if strings.EqualFold(name, m.pattern) {
			matched = append(matched, name)
		}
	}
	return matched
}
