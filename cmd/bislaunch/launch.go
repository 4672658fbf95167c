package main

import (
	"fmt"
	"time"

	"github.com/SierraSoftworks/bislib/pkg/launcher"
	"github.com/SierraSoftworks/bislib/pkg/profile"
	"github.com/SierraSoftworks/bislib/pkg/types"
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch the game with the mod set computed from the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLaunchConfiguration()
		if err != nil {
			return err
		}

		l := launcher.New(launcher.Options{})
		outcome := l.Launch(cmd.Context(), cfg)

		switch outcome.Kind {
		case types.OutcomeSuccess:
			fmt.Printf("%s exited after %s\n",
				cfg.Game.Title(), outcome.EndedAt.Sub(outcome.StartedAt).Round(time.Millisecond))
			return nil
		case types.OutcomeMissingMods:
			fmt.Println(formatBold("Some selection rules matched no mod folder:"))
			for _, rule := range outcome.UnmatchedRules {
				fmt.Printf("  %s\n", rule)
			}
			return fmt.Errorf("%s", outcome.Message)
		default:
			return fmt.Errorf("%s", outcome.Message)
		}
	},
}

// loadLaunchConfiguration reads the active profile and translates it into a
// launch configuration
func loadLaunchConfiguration() (types.LaunchConfiguration, error) {
	path := profilePath
	if path == "" {
		var err error
		path, err = profile.DefaultPath()
		if err != nil {
			return types.LaunchConfiguration{}, err
		}
	}

	p, err := profile.Load(path)
	if err != nil {
		return types.LaunchConfiguration{}, err
	}
	return p.LaunchConfiguration(nil)
}
