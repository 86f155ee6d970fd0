// Brewcraft is a terminal recipe editor for the BreweryX Minecraft plugin.
//
// Usage:
//
//	brewcraft [--config brewcraft.yaml] [--verbose] [--quiet]
//	brewcraft catalog search <query> [--effects]
//	brewcraft version
package main

import "os"

// Build is set via ldflags at build time.
var Build = "unknown"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
