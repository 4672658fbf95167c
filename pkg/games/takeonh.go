package games

import (
	"github.com/SierraSoftworks/bislib/pkg/registry"
	"github.com/SierraSoftworks/bislib/pkg/types"
)

// TakeOnHelicoptersName is the identifier of Take On Helicopters in the game
// registry
const TakeOnHelicoptersName = "takeonh"

// NewTakeOnHelicopters builds a descriptor for Take On Helicopters
func NewTakeOnHelicopters(opts Options) (types.GameDescriptor, error) {
	return New(Config{
		Title:      "Take On Helicopters",
		InstallDir: opts.InstallDir,
		Executable: "takeonh.exe",
		SteamAppID: 65730,
		ReservedFolders: []string{
			"AddOns", "Dta", "Keys", "BattlEye", "Common",
			"HSim", "userconfig",
		},
	}, opts.FS)
}

func init() {
	registry.MustRegister(factories, TakeOnHelicoptersName, NewTakeOnHelicopters)
}
