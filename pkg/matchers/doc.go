// Package matchers implements the four selection strategies used by mod
// selection rules: predicate, exact, wildcard and regex. Patterns are
// compiled and validated when a rule is constructed, so a malformed pattern
// fails before any directory I/O occurs.
package matchers
