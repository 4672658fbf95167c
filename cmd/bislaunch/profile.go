package main

import (
	"fmt"

	"github.com/SierraSoftworks/bislib/pkg/profile"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage launch profiles",
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template profile to the default config location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := profilePath
		if path == "" {
			var err error
			path, err = profile.DefaultPath()
			if err != nil {
				return err
			}
		}

		if err := profile.WriteTemplate(path); err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", formatBold(path))
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileInitCmd)
}
