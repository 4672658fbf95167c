// Package types defines the core types and interfaces used throughout bislib.
// This includes the GameDescriptor and Matcher interfaces, as well as
// data structures like SelectionRule, LaunchConfiguration and LaunchOutcome.
package types
