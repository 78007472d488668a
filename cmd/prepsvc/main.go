// Package main provides the entry point for the RocktheInterview service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepsvc",
	Short: "RocktheInterview API server and study tools",
	Long:  "RocktheInterview analyzes resumes against job descriptions, generates study plans, and serves the community Q&A and practice question REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
