// Package main provides the entry point for the learning assistant CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "AI learning coach for job-application skill gaps",
	Long:  "Coach scans locally generated job-application records, compares their required skills against what you already know, and produces a ranked gap analysis, learning paths, and interview talking points.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
