package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "construction-be",
	Short: "Construction project management backend",
	Long: `Backend for managing construction projects: project tracking,
inventory and material usage, expense verification and AI assistance
for managers, workers and clients.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
