package launchargs

import (
	"fmt"
	"strings"

	"github.com/SierraSoftworks/bislib/pkg/types"
)

const (
	// ModFlag is the command-line flag the game reads its mod list from
	ModFlag = "-mod="

	// Separator joins mod folder names inside the mod flag
	Separator = ";"
)

// Options controls how the mod argument is assembled
type Options struct {
	// LaunchType decides quoting: Steam launches pass the argument through
	// an intermediate shell, so their mod flag is always quoted
	LaunchType types.LaunchType

	// ModListFilter, when set, replaces the selected list outright before
	// the base-mods concatenation
	ModListFilter func([]string) []string

	// PostFilter, when set, rewrites the fully assembled flag as the very
	// last step
	PostFilter func(string) string
}

// ModArgument serializes the selected mod list into the single escaped
// -mod= token. baseMods seeds the list; selected names follow in the order
// selection produced them. An empty combined list yields an empty string
// (no flag at all).
func ModArgument(baseMods string, selected []string, opts Options) string {
	if opts.ModListFilter != nil {
		selected = opts.ModListFilter(selected)
	}

	list := baseMods
	if list != "" && !strings.HasSuffix(list, Separator) && len(selected) > 0 {
		list += Separator
	}
	list += strings.Join(selected, Separator)

	var arg string
	if list != "" {
		arg = ModFlag + list
		// Quoting is driven by both conditions independently: Steam
		// launches are always quoted even without spaces.
		if opts.LaunchType == types.LaunchTypeSteam || strings.Contains(arg, " ") {
			arg = `"` + arg + `"`
		}
	}

	if opts.PostFilter != nil {
		arg = opts.PostFilter(arg)
	}

	return arg
}

// ServerArguments builds the multiplayer connect arguments, or nothing for
// a singleplayer launch
func ServerArguments(server types.ServerSettings) []string {
	if server.IsSingleplayer() {
		return nil
	}

	port := server.Port
	if port == 0 {
		port = types.DefaultServerPort
	}

	args := []string{
		fmt.Sprintf("-connect=%s", server.Address),
		fmt.Sprintf("-port=%d", port),
	}
	if server.Password != "" {
		args = append(args, fmt.Sprintf("-password=%s", server.Password))
	}
	return args
}

// CommandLine assembles the full argument vector for the process: the
// game's base arguments, the mod flag (when non-empty), the caller's extra
// arguments and finally the server connect arguments.
func CommandLine(baseArguments, modArgument string, extraArguments []string, server types.ServerSettings) []string {
	var args []string
	args = append(args, strings.Fields(baseArguments)...)
	if modArgument != "" {
		args = append(args, modArgument)
	}
	args = append(args, extraArguments...)
	args = append(args, ServerArguments(server)...)
	return args
}
