package games

import (
	"github.com/SierraSoftworks/bislib/pkg/registry"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// Arma3Name is the identifier of ARMA 3 in the game registry
const Arma3Name = "arma3"

// NewArma3 builds a descriptor for ARMA 3
func NewArma3(opts Options) (types.GameDescriptor, error) {
	return New(Config{
		Title:      "ARMA 3",
		InstallDir: opts.InstallDir,
		Executable: "arma3.exe",
		SteamAppID: 107410,
		ReservedFolders: []string{
			"Addons", "Dta", "Keys", "BattlEye", "Curator",
			"Heli", "Kart", "Mark", "Expansion", "Jets",
			"Orange", "Tank", "Argo", "Enoch", "userconfig",
		},
	}, opts.FS)
}

func init() {
	registry.MustRegister(factories, Arma3Name, NewArma3)
}
