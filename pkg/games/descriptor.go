package games

import (
	"path/filepath"
	"strings"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/filesystem"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// Config describes a title to the shared Descriptor implementation.
// Per-title files in this package fill one in and hand it to New.
type Config struct {
	// Title is the human-readable game name
	Title string

	// InstallDir is the release installation directory
	InstallDir string

	// BetaSubdir is the beta build's directory, relative to InstallDir;
	// empty when the title has no beta channel
	BetaSubdir string

	// Executable is the release executable file name
	Executable string

	// BetaExecutable is the beta executable file name; defaults to Executable
	BetaExecutable string

	// SteamAppID identifies the title to the Steam client
	SteamAppID int

	// BaseArguments are per-launch-type arguments every launch carries
	BaseArguments map[types.LaunchType]string

	// BaseMods are per-launch-type mod-list prefixes
	BaseMods map[types.LaunchType]string

	// ReservedFolders are base-game directory names that can never be mods
	ReservedFolders []string
}

// Descriptor is the concrete GameDescriptor shared by every title in this
// package. It is immutable after construction.
type Descriptor struct {
	cfg      Config
	reserved map[string]bool
	fs       types.FS
}

// New validates the config and builds a fresh descriptor. Completeness is
// checked here, before any launch attempt, so an incomplete title fails at
// construction rather than partway through a launch.
func New(cfg Config, fs types.FS) (*Descriptor, error) {
	if cfg.Title == "" {
		return nil, liberrors.New(liberrors.ErrMissingCapability, "game descriptor requires a title")
	}
	if cfg.InstallDir == "" {
		return nil, liberrors.Newf(liberrors.ErrMissingCapability,
			"%s: game descriptor requires an install directory", cfg.Title)
	}
	if cfg.Executable == "" {
		return nil, liberrors.Newf(liberrors.ErrMissingCapability,
			"%s: game descriptor requires an executable name", cfg.Title)
	}
	if cfg.BetaExecutable == "" {
		cfg.BetaExecutable = cfg.Executable
	}
	if fs == nil {
		fs = filesystem.NewOS()
	}

	reserved := make(map[string]bool, len(cfg.ReservedFolders))
	for _, name := range cfg.ReservedFolders {
		reserved[strings.ToLower(name)] = true
	}

	return &Descriptor{cfg: cfg, reserved: reserved, fs: fs}, nil
}

// Title returns the human-readable name of the game
func (d *Descriptor) Title() string {
	return d.cfg.Title
}

// Validate reports whether the descriptor carries its full capability set.
// New already enforces this, so a descriptor built through it always passes.
func (d *Descriptor) Validate() error {
	if d.cfg.Title == "" || d.cfg.InstallDir == "" || d.cfg.Executable == "" {
		return liberrors.New(liberrors.ErrMissingCapability, "game descriptor is incomplete")
	}
	return nil
}

// IsInstalled reports whether the executable for the given launch type
// exists. LaunchTypeLatest is installed when either concrete build is.
func (d *Descriptor) IsInstalled(launchType types.LaunchType) bool {
	if launchType == types.LaunchTypeLatest {
		return d.IsInstalled(types.LaunchTypeRelease) || d.IsInstalled(types.LaunchTypeBeta)
	}

	path, err := d.ExecutablePath(launchType)
	if err != nil {
		return false
	}
	info, err := d.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// InstallDirectory returns the installation directory for the given launch type
func (d *Descriptor) InstallDirectory(launchType types.LaunchType) (string, error) {
	switch launchType {
	case types.LaunchTypeBeta:
		if d.cfg.BetaSubdir == "" {
			return "", liberrors.Newf(liberrors.ErrNotInstalled,
				"%s has no beta channel", d.cfg.Title)
		}
		return filepath.Join(d.cfg.InstallDir, d.cfg.BetaSubdir), nil
	case types.LaunchTypeSteam, types.LaunchTypeRelease:
		return d.cfg.InstallDir, nil
	default:
		return "", liberrors.Newf(liberrors.ErrInvalidInput,
			"launch type %s must be resolved before querying the install directory", launchType)
	}
}

// ExecutablePath returns the executable path for the given launch type
func (d *Descriptor) ExecutablePath(launchType types.LaunchType) (string, error) {
	dir, err := d.InstallDirectory(launchType)
	if err != nil {
		return "", err
	}
	if launchType == types.LaunchTypeBeta {
		return filepath.Join(dir, d.cfg.BetaExecutable), nil
	}
	return filepath.Join(dir, d.cfg.Executable), nil
}

// ResolveLaunchType maps LaunchTypeLatest to the newer of the installed
// builds, preferring beta when both executables carry the same timestamp.
// Other launch types pass through unchanged.
func (d *Descriptor) ResolveLaunchType(launchType types.LaunchType) types.LaunchType {
	if launchType != types.LaunchTypeLatest {
		return launchType
	}

	if !d.IsInstalled(types.LaunchTypeBeta) {
		return types.LaunchTypeRelease
	}
	if !d.IsInstalled(types.LaunchTypeRelease) {
		return types.LaunchTypeBeta
	}

	releaseExe, _ := d.ExecutablePath(types.LaunchTypeRelease)
	betaExe, _ := d.ExecutablePath(types.LaunchTypeBeta)

	releaseInfo, err := d.fs.Stat(releaseExe)
	if err != nil {
		return types.LaunchTypeBeta
	}
	betaInfo, err := d.fs.Stat(betaExe)
	if err != nil {
		return types.LaunchTypeRelease
	}

	if releaseInfo.ModTime().After(betaInfo.ModTime()) {
		return types.LaunchTypeRelease
	}
	return types.LaunchTypeBeta
}

// BaseArguments returns the arguments every launch of this title carries
func (d *Descriptor) BaseArguments(launchType types.LaunchType) string {
	return d.cfg.BaseArguments[launchType]
}

// BaseMods returns the mod-list prefix every launch of this title carries
func (d *Descriptor) BaseMods(launchType types.LaunchType) string {
	return d.cfg.BaseMods[launchType]
}

// IsReservedFolder reports whether the named folder belongs to the base game
func (d *Descriptor) IsReservedFolder(name string) bool {
	return d.reserved[strings.ToLower(name)]
}

// SteamAppID identifies the title to the Steam client
func (d *Descriptor) SteamAppID() int {
	return d.cfg.SteamAppID
}
