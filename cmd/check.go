package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ui-server/core/config"
	"ui-server/core/logger"

	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("build output is incomplete")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that both client builds are present",
	Long:  `Verifies that the user and admin build output contain index.html (and, in bucket mode, that the bucket exists).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		app, err := newApplication(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		report := app.integrity.Check(cmd.Context())
		out := cmd.OutOrStdout()

		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
		} else {
			fmt.Fprintln(out, "=== Build Integrity ===")
			if report.Bucket != "" {
				fmt.Fprintf(out, "Bucket: %s\n", report.Bucket)
			}
			if report.Error != "" {
				fmt.Fprintf(out, "Error: %s\n", report.Error)
			}
			for _, m := range report.Mounts {
				status := "ok"
				if !m.OK {
					status = "missing " + strings.Join(m.Missing, ", ")
				}
				fmt.Fprintf(out, "%-6s %-14s %s (%s)\n", m.Mount, m.Prefix, m.Root, status)
			}
		}

		if !report.Healthy() {
			return errUnhealthy
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print the report as JSON")
	RootCmd.AddCommand(checkCmd)
}
