package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List registered HTTP routes",
	Long:  "Build the application without starting it and print every registered route",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func runRoutes(cmd *cobra.Command, args []string) error {
	var e *echo.Echo
	app := newApp(fx.Populate(&e))
	if err := app.Err(); err != nil {
		return err
	}
	return printRoutes(cmd.OutOrStdout(), e.Routes())
}

func printRoutes(w io.Writer, routes []*echo.Route) error {
	routes = slices.Clone(routes)
	slices.SortFunc(routes, func(a, b *echo.Route) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Method, b.Method))
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\n", r.Method, r.Path)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
