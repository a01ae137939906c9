// This is the main entry point for the qtty CLI.
// Build with: go build -o bin/qtty ./cmd/qtty
// Usage: qtty <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
