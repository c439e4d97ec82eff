package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authLogin  bool
	authLogout bool
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Open or close an API session",
	Long: `Verify credentials by opening or closing a management session.

Exactly one of --login or --logout must be given. Logging out without a
prior login is permitted and clears any stale session the appliance still
holds for this user.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if authLogin == authLogout {
			return errors.New("exactly one of --login or --logout is required")
		}

		api, err := newAPI()
		if err != nil {
			return err
		}

		if authLogin {
			result, err := api.Login()
			if err != nil {
				return fmt.Errorf("failed to log in: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			return nil
		}

		result, err := api.Logout()
		if err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
		return nil
	},
}

func init() {
	authCmd.Flags().BoolVar(&authLogin, "login", false, "log in to the appliance")
	authCmd.Flags().BoolVar(&authLogout, "logout", false, "log out of the appliance")
	rootCmd.AddCommand(authCmd)
}
