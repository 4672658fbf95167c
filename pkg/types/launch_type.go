package types

import "fmt"

// LaunchType indicates which build/channel of a game should be started
type LaunchType string

const (
	// LaunchTypeSteam starts the game through the Steam client wrapper
	LaunchTypeSteam LaunchType = "steam"

	// LaunchTypeRelease starts the stable release build directly
	LaunchTypeRelease LaunchType = "release"

	// LaunchTypeBeta starts the beta build directly
	LaunchTypeBeta LaunchType = "beta"

	// LaunchTypeLatest resolves at launch time to whichever of release or
	// beta the game descriptor considers newest. It is never used for any
	// descriptor call after resolution.
	LaunchTypeLatest LaunchType = "latest"
)

// String returns the string representation of the launch type
func (t LaunchType) String() string {
	return string(t)
}

// ParseLaunchType converts a string to a LaunchType
func ParseLaunchType(s string) (LaunchType, error) {
	switch LaunchType(s) {
	case LaunchTypeSteam, LaunchTypeRelease, LaunchTypeBeta, LaunchTypeLatest:
		return LaunchType(s), nil
	case "":
		return LaunchTypeLatest, nil
	default:
		return "", fmt.Errorf("unknown launch type %q", s)
	}
}
