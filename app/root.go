// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amigovet-server",
	Short: "AmigoVet is the content server for the AmigoVet clinic website",
	Long: `AmigoVet serves the public content API of the AmigoVet veterinary
clinic website and the admin API used to manage settings, galleries,
lost pet listings and contact messages.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
