package matchers

import (
	"fmt"
	"regexp"
	"strings"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// WildcardMatcher matches folder names against a pattern whose only
// metacharacter is '*', standing for any run of characters. Matching is
// case-insensitive. A pattern containing '*' is anchored at the start of
// the name and open at the end: "ab*cd" matches "abXYZcd" and "abcdxyz"
// but not "xxabcd". A pattern without '*' matches as a literal substring
// anywhere in the name. Earlier launchers in this family matched the same
// way, so patterns written against them keep working.
type WildcardMatcher struct {
	pattern string
	re      *regexp.Regexp
}

// NewWildcardMatcher compiles the given wildcard pattern.
// A malformed pattern is reported here, never at match time.
func NewWildcardMatcher(pattern string) (*WildcardMatcher, error) {
	if pattern == "" {
		return nil, liberrors.New(liberrors.ErrInvalidPattern, "wildcard pattern cannot be empty")
	}

	// Each literal segment is regex-escaped so metacharacters in folder
	// names ('+', '(' etc.) stay literal.
	segments := strings.Split(pattern, "*")
	for i, segment := range segments {
		segments[i] = regexp.QuoteMeta(segment)
	}

	expr := strings.Join(segments, ".*")
	if strings.Contains(pattern, "*") {
		expr = "^" + expr
	}
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return nil, liberrors.Wrapf(err, liberrors.ErrInvalidPattern,
			"invalid wildcard pattern %q", pattern)
	}

	return &WildcardMatcher{pattern: pattern, re: re}, nil
}

// Name returns the engine name of this matcher
func (m *WildcardMatcher) Name() string {
	return string(types.EngineWildcard)
}

// Description returns a human-readable description of this matcher
func (m *WildcardMatcher) Description() string {
	return fmt.Sprintf("Matches folders against wildcard %q", m.pattern)
}

// Match returns the candidates the wildcard accepts, in input order
func (m *WildcardMatcher) Match(candidates []string) []string {
	var matched []string
	for _, name := range candidates {
		if m.re.MatchString(name) {
			matched = append(matched, name)
		}
	}
	return matched
}
