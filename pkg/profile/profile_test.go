package profile

import (
	"os"
	"path/filepath"
	"testing"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/SierraSoftworks/bislib/pkg/testutil"
	"github.com/SierraSoftworks/bislib/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeProfile(t, "profile.toml", `
game = "arma2oa"
install_dir = "/games/arma2oa"
launch_type = "beta"
search_dirs = ["/mods"]
extra_args = ["-nosplash"]

[[mods]]
pattern = "@CBA"

[[mods]]
engine = "wildcard"
pattern = "@ACE*"

[[mods]]
engine = "exact"
pattern = "@broken"
exclude = true

[server]
address = "198.51.100.7"
port = 2402
password = "hunter2"
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "arma2oa", p.Game)
	assert.Equal(t, "/games/arma2oa", p.InstallDir)
	assert.Equal(t, "beta", p.LaunchType)
	assert.Equal(t, []string{"/mods"}, p.SearchDirs)
	assert.Equal(t, []string{"-nosplash"}, p.ExtraArgs)
	require.Len(t, p.Mods, 3)
	assert.True(t, p.Mods[2].Exclude)
	assert.Equal(t, "198.51.100.7", p.Server.Address)
}

func TestLoadYAML(t *testing.T) {
	path := writeProfile(t, "profile.yaml", `
game: arma3
install_dir: /games/arma3
mods:
  - pattern: "@CBA_A3"
  - engine: regex
    pattern: "^@ace"
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "arma3", p.Game)
	require.Len(t, p.Mods, 2)
	assert.Equal(t, "regex", p.Mods[1].Engine)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeProfile(t, "profile.json", `{}`)
	_, err := Load(path)
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrProfileLoad))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrProfileLoad))
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BISLIB_INSTALL_DIR", "/elsewhere/arma2oa")

	path := writeProfile(t, "profile.toml", `
game = "arma2oa"
install_dir = "/games/arma2oa"
`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere/arma2oa", p.InstallDir)
}

func TestLaunchConfiguration(t *testing.T) {
	p := &Profile{
		Game:       "arma2",
		InstallDir: "/games/arma2",
		LaunchType: "release",
		SearchDirs: []string{"/mods"},
		Mods: []ModRule{
			{Pattern: "@CBA"},
			{Engine: "wildcard", Pattern: "@ACE*", Exclude: true},
		},
		Server: Server{Address: "198.51.100.7", Port: 2402},
	}

	cfg, err := p.LaunchConfiguration(testutil.NewMemoryFS())
	require.NoError(t, err)

	assert.Equal(t, "ARMA 2", cfg.Game.Title())
	assert.Equal(t, types.LaunchTypeRelease, cfg.LaunchType)
	assert.Equal(t, []string{"/mods"}, cfg.ExtraSearchDirectories)
	require.Len(t, cfg.Rules, 2)
	// Engine defaults to exact
	assert.Equal(t, types.EngineExact, cfg.Rules[0].Engine)
	assert.Equal(t, types.EngineWildcard, cfg.Rules[1].Engine)
	assert.True(t, cfg.Rules[1].Exclude)
	assert.Equal(t, "198.51.100.7", cfg.Server.Address)
}

func TestLaunchConfigurationDefaults(t *testing.T) {
	p := &Profile{Game: "arma2", InstallDir: "/games/arma2"}

	cfg, err := p.LaunchConfiguration(testutil.NewMemoryFS())
	require.NoError(t, err)

	assert.Equal(t, types.LaunchTypeLatest, cfg.LaunchType)
	assert.Equal(t, types.DefaultServer(), cfg.Server)
}

func TestLaunchConfigurationValidation(t *testing.T) {
	_, err := (&Profile{InstallDir: "/g"}).LaunchConfiguration(testutil.NewMemoryFS())
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrProfileValid))

	_, err = (&Profile{Game: "arma2"}).LaunchConfiguration(testutil.NewMemoryFS())
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrProfileValid))

	_, err = (&Profile{Game: "arma4", InstallDir: "/g"}).LaunchConfiguration(testutil.NewMemoryFS())
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrGameNotFound))

	_, err = (&Profile{
		Game:       "arma2",
		InstallDir: "/g",
		Mods:       []ModRule{{Engine: "regex", Pattern: "["}},
	}).LaunchConfiguration(testutil.NewMemoryFS())
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrInvalidPattern))

	_, err = (&Profile{
		Game:       "arma2",
		InstallDir: "/g",
		LaunchType: "nightly",
	}).LaunchConfiguration(testutil.NewMemoryFS())
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrProfileValid))
}

func TestWriteTemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, WriteTemplate(path))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "arma2oa", p.Game)
	require.Len(t, p.Mods, 2)
	assert.Equal(t, "@CBA", p.Mods[0].Pattern)

	// Refuses to overwrite
	err = WriteTemplate(path)
	assert.True(t, liberrors.IsErrorCode(err, liberrors.ErrAlreadyExists))
}
