package types

// GameDescriptor is the per-title capability set consumed by the launch core.
// Implementations live in pkg/games; the core only queries them.
type GameDescriptor interface {
	// Title returns the human-readable name of the game
	Title() string

	// IsInstalled reports whether the build for the given launch type is present
	IsInstalled(launchType LaunchType) bool

	// InstallDirectory returns the installation directory for the given launch type
	InstallDirectory(launchType LaunchType) (string, error)

	// ExecutablePath returns the path of the executable for the given launch type
	ExecutablePath(launchType LaunchType) (string, error)

	// ResolveLaunchType maps LaunchTypeLatest to a concrete launch type.
	// The tie-break between release and beta is title-specific; the result
	// is never LaunchTypeLatest. Other launch types pass through unchanged.
	ResolveLaunchType(launchType LaunchType) LaunchType

	// BaseArguments returns the arguments every launch of this title carries
	BaseArguments(launchType LaunchType) string

	// BaseMods returns the mod-list prefix every launch of this title carries
	BaseMods(launchType LaunchType) string

	// IsReservedFolder reports whether the named folder belongs to the base
	// game installation and can never be treated as a mod
	IsReservedFolder(name string) bool
}

// DescriptorValidator is implemented by descriptors that can verify their own
// completeness. The orchestrator checks it before performing any I/O.
type DescriptorValidator interface {
	Validate() error
}
