// Package launcher orchestrates game launches: it validates the game
// descriptor, checks installation, resolves the launch type, runs mod
// selection, assembles the command line and hands the result to a process
// runner, reporting a single tagged LaunchOutcome per attempt.
package launcher
