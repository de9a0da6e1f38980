package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/heptuple/pkg/heptuple"
)

func newRegisterCmd() *cobra.Command {
	var req heptuple.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Register a new account. Registration does not log you in; run 'heptuple login' afterwards.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.Username == "" {
				req.Username, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Username: ")
				if err != nil {
					return err
				}
			}
			if req.Email == "" {
				req.Email, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Email: ")
				if err != nil {
					return err
				}
			}
			if req.Password == "" {
				req.Password, err = promptLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Password: ")
				if err != nil {
					return err
				}
			}
			if req.Username == "" || req.Email == "" || req.Password == "" {
				return fmt.Errorf("username, email, and password are required")
			}

			user, err := session.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created. Run 'heptuple login' to sign in.\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Account username (prompted if omitted)")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Account password (prompted if omitted)")
	cmd.Flags().StringVar(&req.Specialization, "specialization", "", "Optional specialization")
	return cmd
}
