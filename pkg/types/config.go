package types

// DefaultServerPort is the default game server port
const DefaultServerPort = 2302

// ServerSettings identifies the multiplayer server to join after launch.
// The zero value (completed by DefaultServer) means singleplayer.
type ServerSettings struct {
	Address  string
	Port     int
	Password string
}

// DefaultServer returns the loopback/singleplayer server settings
func DefaultServer() ServerSettings {
	return ServerSettings{
		Address: "127.0.0.1",
		Port:    DefaultServerPort,
	}
}

// IsSingleplayer reports whether these settings describe a local,
// non-multiplayer launch
func (s ServerSettings) IsSingleplayer() bool {
	return s.Address == "" || s.Address == "127.0.0.1" || s.Address == "localhost"
}

// LaunchConfiguration carries everything one launch attempt needs.
// It is owned by the caller and read-only to the core; the core never
// mutates it and holds no reference to it after the outcome is delivered.
type LaunchConfiguration struct {
	// Game is the descriptor of the title to launch
	Game GameDescriptor

	// LaunchType is the requested build/channel
	LaunchType LaunchType

	// Rules is the ordered list of mod selection rules
	Rules []SelectionRule

	// ExtraSearchDirectories are searched for mod folders after the game's
	// own install directory, in the order given
	ExtraSearchDirectories []string

	// ExtraArguments are appended verbatim to the assembled command line
	ExtraArguments []string

	// Server identifies the multiplayer server to join; defaults to
	// singleplayer when zero
	Server ServerSettings

	// PreFilter, when set, rewrites the descriptor's base-mods string
	// before selection runs
	PreFilter func(string) string

	// PostFilter, when set, rewrites the fully assembled mod flag as the
	// last step before process construction
	PostFilter func(string) string

	// ModListFilter, when set, replaces the selected mod list outright
	// before the base-mods concatenation
	ModListFilter func([]string) []string

	// MissingRulesPolicy, when set, is consulted when rules matched nothing.
	// Returning true allows the launch to proceed anyway.
	MissingRulesPolicy func([]SelectionRule) bool

	// RuleOverride, when set, may replace the matched set of each rule.
	// UIs use it for manual resolution of ambiguous matches.
	RuleOverride func(SelectionRule, []string) []string
}
