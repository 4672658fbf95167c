package main

import (
	"fmt"

	"github.com/SierraSoftworks/bislib/internal/version"
	"github.com/SierraSoftworks/bislib/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity   int
	profilePath string

	rootCmd = &cobra.Command{
		Use:   "bislaunch",
		Short: "Launch Bohemia Interactive games with a computed mod set",
		Long: `bislaunch starts a locally installed game with a mod list computed from
an ordered set of selection rules. Rules match mod folders discovered in the
game's install directory and any extra search directories, and the winning
set is serialized into the game's -mod= argument.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "Launch profile file (default is $XDG_CONFIG_HOME/bislaunch/profile.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(modsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(profileCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bislaunch version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
