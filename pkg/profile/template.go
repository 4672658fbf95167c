package profile

import (
	"os"
	"path/filepath"

	liberrors "github.com/SierraSoftworks/bislib/pkg/errors"
	"github.com/adrg/xdg"
	gotoml "github.com/pelletier/go-toml/v2"
)

// DefaultPath returns the default profile location under the XDG config
// directory
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join("bislaunch", "profile.toml"))
	if err != nil {
		return "", liberrors.Wrap(err, liberrors.ErrProfileLoad,
			"cannot resolve default profile path")
	}
	return path, nil
}

// WriteTemplate writes a starter profile to the given path. It refuses to
// overwrite an existing file.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return liberrors.Newf(liberrors.ErrAlreadyExists, "profile %s already exists", path)
	}

	template := Profile{
		Game:       "arma2oa",
		InstallDir: "/games/arma2oa",
		LaunchType: "latest",
		SearchDirs: []string{},
		ExtraArgs:  []string{"-nosplash"},
		Mods: []ModRule{
			{Engine: "exact", Pattern: "@CBA"},
			{Engine: "wildcard", Pattern: "@ACE*"},
		},
	}

	data, err := gotoml.Marshal(template)
	if err != nil {
		return liberrors.Wrap(err, liberrors.ErrInternal, "cannot serialize profile template")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return liberrors.Wrapf(err, liberrors.ErrProfileLoad,
			"cannot create profile directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return liberrors.Wrapf(err, liberrors.ErrProfileLoad,
			"cannot write profile template to %s", path)
	}
	return nil
}
