package cmd

import (
	"fmt"
	"text/tabwriter"

	"ui-server/core/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table in match order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		app, err := newApplication(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tMETHOD\tPATH\tNAME")
		for _, rt := range app.server.Routes().Table() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rt.Kind, rt.Method, rt.Path, rt.Name)
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(routesCmd)
}
