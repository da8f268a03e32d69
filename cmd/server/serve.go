package main

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  "Start the HTTP server and background workers, and run until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	app := newApp()
	if err := app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
