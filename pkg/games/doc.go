// Package games provides the per-title GameDescriptor implementations and a
// factory registry for looking them up by identifier. Descriptors are built
// fresh on every lookup and are immutable; install locations are supplied by
// the caller since they are machine-specific.
package games
