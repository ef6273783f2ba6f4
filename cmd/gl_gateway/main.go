package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title GL Gateway API
// @version 1.0
// @description Journal-entry gateway over the iDempiere REST API.

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	rootCmd := &cobra.Command{
		Use:   "gl_gateway",
		Short: "Journal-entry gateway for iDempiere",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newImportCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
