package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbonath/sonicapi/sonicos"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Show uncommitted configuration changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(api sonicos.API) error {
			result, err := api.PendingChanges()
			if err != nil {
				return fmt.Errorf("failed to fetch pending changes: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			return nil
		})
	},
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Commit pending configuration changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			fmt.Fprintln(cmd.OutOrStdout(), "(dry-run) would commit pending configuration changes")
			return nil
		}
		return withSession(func(api sonicos.API) error {
			result, err := api.CommitPending()
			if err != nil {
				return fmt.Errorf("failed to commit pending changes: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			return nil
		})
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the appliance",
	Long:  "Restart the firewall appliance. Traffic is interrupted until it comes back up.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			fmt.Fprintln(cmd.OutOrStdout(), "(dry-run) would restart the appliance")
			return nil
		}
		if !confirm(cmd, "Restart the appliance? This interrupts all traffic.") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		return withSession(func(api sonicos.API) error {
			result, err := api.Restart()
			if err != nil {
				return fmt.Errorf("failed to restart: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(restartCmd)
}
