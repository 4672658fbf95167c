package main

import (
	"fmt"
	"os"

	// Import the games package so its init() functions register the
	// per-title descriptor factories
	_ "github.com/SierraSoftworks/bislib/pkg/games"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
