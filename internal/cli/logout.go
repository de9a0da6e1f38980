package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Long:  "Clear the stored session. The backend is notified on a best-effort basis; logout always succeeds locally.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !session.ValidateToken(cmd.Context()) {
				return fmt.Errorf("not logged in")
			}

			user := session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", user.Username)
			fmt.Fprintf(cmd.OutOrStdout(), "Email:    %s\n", user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Role:     %s\n", user.Role)
			if user.Specialization != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Specialization: %s\n", user.Specialization)
			}
			return nil
		},
	}
}
