package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "puzzle-solver",
	Short:   "Slice images into shuffled puzzles and reconstruct them",
	Version: Version + " (" + GitCommit + ")",
	Long: `puzzle-solver cuts an image into an NxN grid of shuffled square pieces
and reconstructs the original arrangement by heuristic edge matching.

Two scoring strategies are available (gradient continuity and Lab color
continuity) plus an unscored random baseline for comparison.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Diagnostics go to stderr; stdout carries command output only.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
