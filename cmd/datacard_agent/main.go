// Package main provides the entry point for the datacard transformer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datacard_agent",
	Short: "BattleScribe catalogue to datacard JSON transformer",
	Long:  "datacard_agent converts BattleScribe catalogue files into the compact datacard JSON schema and validates the result against a trusted reference document.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
