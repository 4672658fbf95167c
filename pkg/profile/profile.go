package profile

import (
	"path/filepath"
	"strings"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/games"
	"github.com/SierraSoftworks/bislib/pkg/logging"
	"github.com/SierraSoftworks/bislib/pkg/matchers"
	"github.com/SierraSoftworks/bislib/pkg/types"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override profile
// values, e.g. BISLIB_INSTALL_DIR
const EnvPrefix = "BISLIB_"

// ModRule is one selection rule as written in a profile file
type ModRule struct {
	// Engine names the matching strategy; defaults to "exact"
	Engine string `koanf:"engine" toml:"engine"`

	// Pattern is the match pattern
	Pattern string `koanf:"pattern" toml:"pattern"`

	// Exclude marks the rule as an exclusion rule
	Exclude bool `koanf:"exclude" toml:"exclude"`
}

// Server identifies the multiplayer server to join
type Server struct {
	Address  string `koanf:"address" toml:"address"`
	Port     int    `koanf:"port" toml:"port"`
	Password string `koanf:"password" toml:"password"`
}

// Profile is a declarative launch configuration as stored on disk
type Profile struct {
	// Game is the title identifier in the game registry
	Game string `koanf:"game" toml:"game"`

	// InstallDir is the game's release installation directory
	InstallDir string `koanf:"install_dir" toml:"install_dir"`

	// LaunchType is the requested build/channel; defaults to "latest"
	LaunchType string `koanf:"launch_type" toml:"launch_type"`

	// SearchDirs are extra mod search directories
	SearchDirs []string `koanf:"search_dirs" toml:"search_dirs"`

	// ExtraArgs are appended verbatim to the command line
	ExtraArgs []string `koanf:"extra_args" toml:"extra_args"`

	// Mods are the ordered selection rules
	Mods []ModRule `koanf:"mods" toml:"mods"`

	// Server is the multiplayer server to join; empty means singleplayer
	Server Server `koanf:"server" toml:"server"`
}

// Load reads a profile from the given TOML or YAML file, then applies
// BISLIB_-prefixed environment variable overrides
func Load(path string) (*Profile, error) {
	logger := logging.GetLogger("profile")
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, liberrors.Newf(liberrors.ErrProfileLoad,
			"unsupported profile format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, liberrors.Wrapf(err, liberrors.ErrProfileLoad,
			"failed to load profile from %s", path)
	}

	// Environment variables override file values: BISLIB_INSTALL_DIR, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, liberrors.Wrap(err, liberrors.ErrProfileLoad, "failed to load environment overrides")
	}

	var p Profile
	if err := k.Unmarshal("", &p); err != nil {
		return nil, liberrors.Wrapf(err, liberrors.ErrProfileParse,
			"failed to parse profile from %s", path)
	}

	logger.Debug().
		Str("path", path).
		Str("game", p.Game).
		Int("rules", len(p.Mods)).
		Msg("Profile loaded")

	return &p, nil
}

// LaunchConfiguration translates the profile into a validated launch
// configuration. Pattern errors surface here, before any launch attempt.
func (p *Profile) LaunchConfiguration(fs types.FS) (types.LaunchConfiguration, error) {
	if p.Game == "" {
		return types.LaunchConfiguration{}, liberrors.New(liberrors.ErrProfileValid,
			"profile does not name a game")
	}
	if p.InstallDir == "" {
		return types.LaunchConfiguration{}, liberrors.New(liberrors.ErrProfileValid,
			"profile does not set install_dir")
	}

	game, err := games.Get(p.Game, games.Options{InstallDir: p.InstallDir, FS: fs})
	if err != nil {
		return types.LaunchConfiguration{}, err
	}

	launchType, err := types.ParseLaunchType(p.LaunchType)
	if err != nil {
		return types.LaunchConfiguration{}, liberrors.Wrap(err, liberrors.ErrProfileValid,
			"invalid launch type")
	}

	rules := make([]types.SelectionRule, 0, len(p.Mods))
	for _, mod := range p.Mods {
		engine := types.MatchEngine(mod.Engine)
		if mod.Engine == "" {
			engine = types.EngineExact
		}
		rule, err := matchers.NewRule(engine, mod.Pattern, mod.Exclude)
		if err != nil {
			return types.LaunchConfiguration{}, err
		}
		rules = append(rules, rule)
	}

	server := types.DefaultServer()
	if p.Server.Address != "" {
		server = types.ServerSettings{
			Address:  p.Server.Address,
			Port:     p.Server.Port,
			Password: p.Server.Password,
		}
	}

	return types.LaunchConfiguration{
		Game:                   game,
		LaunchType:             launchType,
		Rules:                  rules,
		ExtraSearchDirectories: p.SearchDirs,
		ExtraArguments:         p.ExtraArgs,
		Server:                 server,
	}, nil
}
