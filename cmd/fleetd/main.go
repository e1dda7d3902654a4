// Package main provides the fleetd binary entry point. Fleetd serves
// the fleet operational-state API: trip lifecycle, maintenance,
// registers, reports and CSV export.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
