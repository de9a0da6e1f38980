package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show backend service and storage health",
		Long:  "Probe the unauthenticated health endpoints. Unreachable services are reported, not errors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if health := client.Health(cmd.Context()); health != nil {
				fmt.Fprintf(out, "Service:  %s (version %s)\n", health.Status, health.Version)
			} else {
				fmt.Fprintln(out, "Service:  unreachable")
			}

			if db := client.DatabaseHealth(cmd.Context()); db != nil {
				fmt.Fprintf(out, "Database: %s\n", db.Database)
			} else {
				fmt.Fprintln(out, "Database: unreachable")
			}

			if session.IsAuthenticated() {
				fmt.Fprintf(out, "Session:  logged in as %s\n", session.User().Username)
			} else {
				fmt.Fprintln(out, "Session:  logged out")
			}
			return nil
		},
	}
}
