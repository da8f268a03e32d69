package main

import (
	"github.com/spf13/cobra"
)

// rootCmd serves the site when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "portfr",
	Short: "Portfolio web server",
	Long: `Serves the single-page portfolio site, its static assets and the
operational endpoints (health, metrics, diagnostics).

Configuration comes from the environment; .env and .env.local in the
working directory are loaded first when present.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadEnv()
	},
	RunE: runServe,
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}
