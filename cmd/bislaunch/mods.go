package main

import (
	"fmt"

	"github.com/SierraSoftworks/bislib/pkg/selection"
	"github.com/spf13/cobra"
)

var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "Show the mod selection the profile would launch with, without launching",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLaunchConfiguration()
		if err != nil {
			return err
		}

		resolved := cfg.Game.ResolveLaunchType(cfg.LaunchType)
		engine := selection.New(selection.Options{})
		outcome, err := engine.Select(cfg, resolved)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n\n", formatBold(cfg.Game.Title()), resolved)

		fmt.Println(formatBold("Selected:"))
		if len(outcome.Selected) == 0 {
			fmt.Println(formatDim("  (none)"))
		}
		for _, name := range outcome.Selected {
			fmt.Printf("  %s\n", name)
		}

		if len(outcome.Excluded) > 0 {
			fmt.Println(formatBold("Excluded:"))
			for _, name := range outcome.Excluded {
				fmt.Printf("  %s\n", name)
			}
		}

		if len(outcome.UnmatchedRules) > 0 {
			fmt.Println(formatBold("Unmatched rules:"))
			for _, rule := range outcome.UnmatchedRules {
				fmt.Printf("  %s\n", rule)
			}
		}

		return nil
	},
}
