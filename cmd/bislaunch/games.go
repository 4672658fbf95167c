package main

import (
	"fmt"

	"github.com/SierraSoftworks/bislib/pkg/games"
	"github.com/spf13/cobra"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the game identifiers usable in a profile's game field",
	Run: func(cmd *cobra.Command, args []string) {
		names := games.List()
		if len(names) == 0 {
			fmt.Println(formatDim("no games registered"))
			return
		}

		for _, name := range names {
			fmt.Println(formatBold(name))
		}
	},
}
