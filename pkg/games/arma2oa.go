package games

import (
	"github.com/SierraSoftworks/bislib/pkg/registry"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// Arma2OAName is the identifier of ARMA 2: Operation Arrowhead in the game
// registry
const Arma2OAName = "arma2oa"

// NewArma2OA builds a descriptor for ARMA 2: Operation Arrowhead.
// The Expansion prefix in the base mod list makes a Combined Operations
// install load the ARMA 2 content alongside the Arrowhead content.
func NewArma2OA(opts Options) (types.GameDescriptor, error) {
	return New(Config{
		Title:          "ARMA 2: Operation Arrowhead",
		InstallDir:     opts.InstallDir,
		BetaSubdir:     "Expansion/beta",
		Executable:     "arma2OA.exe",
		BetaExecutable: "arma2OA.exe",
		SteamAppID:     33930,
		BaseArguments: map[types.LaunchType]string{
			types.LaunchTypeBeta: "-beta=Expansion/beta;Expansion/beta/Expansion",
		},
		BaseMods: map[types.LaunchType]string{
			types.LaunchTypeSteam:   "Expansion",
			types.LaunchTypeRelease: "Expansion",
			types.LaunchTypeBeta:    "Expansion",
		},
		ReservedFolders: []string{
			"AddOns", "Common", "Dta", "Expansion", "BattlEye",
			"BESetup", "Keys", "DirectX", "userconfig",
		},
	}, opts.FS)
}

func init() {
	registry.MustRegister(factories, Arma2OAName, NewArma2OA)
}
