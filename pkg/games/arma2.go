package games

import (
	"github.com/SierraSoftworks/bislib/pkg/registry"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// Arma2Name is the identifier of ARMA 2 in the game registry
const Arma2Name = "arma2"

// NewArma2 builds a descriptor for ARMA 2
func NewArma2(opts Options) (types.GameDescriptor, error) {
	return New(Config{
		Title:      "ARMA 2",
		InstallDir: opts.InstallDir,
		BetaSubdir: "beta",
		Executable: "arma2.exe",
		SteamAppID: 33910,
		BaseArguments: map[types.LaunchType]string{
			types.LaunchTypeBeta: "-beta=beta",
		},
		ReservedFolders: []string{
			"AddOns", "Dta", "BattlEye", "BESetup", "Keys",
			"DirectX", "beta", "userconfig",
		},
	}, opts.FS)
}

func init() {
	registry.MustRegister(factories, Arma2Name, NewArma2)
}
