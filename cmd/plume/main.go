package main

import (
	"os"

	"github.com/spf13/cobra"

	"plume/internal/interfaces/cli/migrate"
	"plume/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plume",
		Short: "Plume - social media scheduling platform backend",
		Long:  `Plume is the subscription and notification backend for a social media scheduling platform.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
