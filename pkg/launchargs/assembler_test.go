package launchargs

import (
	"strings"
	"testing"

	"github.com/SierraSoftworks/bislib/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestModArgument(t *testing.T) {
	tests := []struct {
		name     string
		baseMods string
		selected []string
		opts     Options
		expected string
	}{
		{
			name:     "plain selection",
			selected: []string{"X", "Y"},
			opts:     Options{LaunchType: types.LaunchTypeRelease},
			expected: "-mod=X;Y",
		},
		{
			name:     "steam is always quoted",
			selected: []string{"X", "Y"},
			opts:     Options{LaunchType: types.LaunchTypeSteam},
			expected: `"-mod=X;Y"`,
		},
		{
			name:     "space forces quoting",
			selected: []string{"My Mod"},
			opts:     Options{LaunchType: types.LaunchTypeRelease},
			expected: `"-mod=My Mod"`,
		},
		{
			name:     "base mods prefix the list",
			baseMods: "Expansion",
			selected: []string{"@CBA"},
			opts:     Options{LaunchType: types.LaunchTypeRelease},
			expected: "-mod=Expansion;@CBA",
		},
		{
			name:     "base mods with trailing separator",
			baseMods: "Expansion;",
			selected: []string{"@CBA"},
			opts:     Options{LaunchType: types.LaunchTypeRelease},
			expected: "-mod=Expansion;@CBA",
		},
		{
			name:     "base mods alone",
			baseMods: "Expansion",
			opts:     Options{LaunchType: types.LaunchTypeRelease},
			expected: "-mod=Expansion",
		},
		{
			name:     "empty list yields no flag",
			opts:     Options{LaunchType: types.LaunchTypeRelease},
			expected: "",
		},
		{
			name: "empty list still empty for steam",
			opts: Options{LaunchType: types.LaunchTypeSteam},
			// Quoting applies to the flag, and there is no flag.
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ModArgument(tt.baseMods, tt.selected, tt.opts))
		})
	}
}

func TestModArgumentModListFilter(t *testing.T) {
	opts := Options{
		LaunchType: types.LaunchTypeRelease,
		ModListFilter: func(selected []string) []string {
			// Replaces, not merges
			return []string{"@Only"}
		},
	}
	assert.Equal(t, "-mod=Base;@Only", ModArgument("Base", []string{"X", "Y"}, opts))
}

func TestModArgumentPostFilter(t *testing.T) {
	opts := Options{
		LaunchType: types.LaunchTypeRelease,
		PostFilter: func(arg string) string {
			return strings.ToLower(arg)
		},
	}
	assert.Equal(t, "-mod=x", ModArgument("", []string{"X"}, opts))
}

func TestServerArguments(t *testing.T) {
	assert.Nil(t, ServerArguments(types.DefaultServer()))
	assert.Nil(t, ServerArguments(types.ServerSettings{}))
	assert.Nil(t, ServerArguments(types.ServerSettings{Address: "localhost", Port: 2302}))

	args := ServerArguments(types.ServerSettings{Address: "198.51.100.7"})
	assert.Equal(t, []string{"-connect=198.51.100.7", "-port=2302"}, args)

	args = ServerArguments(types.ServerSettings{Address: "198.51.100.7", Port: 2402, Password: "hunter2"})
	assert.Equal(t, []string{"-connect=198.51.100.7", "-port=2402", "-password=hunter2"}, args)
}

func TestCommandLine(t *testing.T) {
	args := CommandLine("-nosplash -world=empty", "-mod=@CBA", []string{"-window"},
		types.ServerSettings{Address: "198.51.100.7", Port: 2302})

	assert.Equal(t, []string{
		"-nosplash", "-world=empty",
		"-mod=@CBA",
		"-window",
		"-connect=198.51.100.7", "-port=2302",
	}, args)
}

func TestCommandLineMinimal(t *testing.T) {
	assert.Empty(t, CommandLine("", "", nil, types.DefaultServer()))
}
