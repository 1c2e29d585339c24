// Package main provides the entry point for Herodex.
//
// Herodex is a small web front end for browsing a comic character catalog
// page by page, optionally filtered by name prefix.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Version information set during build time
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Herodex exited with error")
		os.Exit(1)
	}
}
