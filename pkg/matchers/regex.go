package matchers

import (
	"fmt"
	"regexp"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// RegexMatcher matches folder names against a regular expression. The
// expression is unanchored: a folder is included if the pattern matches
// anywhere within its name.
type RegexMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewRegexMatcher compiles the given regular expression.
// A malformed pattern is reported here, never at match time.
func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	if pattern == "" {
		return nil, liberrors.New(liberrors.ErrInvalidPattern, "regex pattern cannot be empty")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, liberrors.Wrapf(err, liberrors.ErrInvalidPattern,
			"invalid regex pattern %q", pattern)
	}

	return &RegexMatcher{pattern: pattern, re: re}, nil
}

// Name returns the engine name of this matcher
func (m *RegexMatcher) Name() string {
	return string(types.EngineRegex)
}

// Description returns a human-readable description of this matcher
func (m *RegexMatcher) Description() string {
	return fmt.Sprintf("Matches folders against regex %q", m.pattern)
}

// Match returns the candidates the expression accepts, in input order
func (m *RegexMatcher) Match(candidates []string) []string {
	var matched []string
	for _, name := range candidates {
		if m.re.MatchString(name) {
			matched = append(matched, name)
		}
	}
	return matched
}
