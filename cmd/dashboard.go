package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hbonath/sonicapi/tui"
)

// dashboardCmd launches the interactive TUI dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive TUI dashboard",
	Long: `Launch an interactive terminal dashboard that displays zones, address
objects, and access rules from the firewall. Data is refreshed every 5
seconds.

Key bindings:
  Tab / Shift+Tab  Navigate between tabs
  1 / 2 / 3        Jump directly to Zones / Address Objects / Access Rules
  r                Force an immediate data refresh
  q / Ctrl+C       Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI()
		if err != nil {
			return err
		}
		if _, err := api.Login(); err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}
		defer func() {
			if _, err := api.Logout(); err != nil {
				logger.Warn("logout failed", "error", err)
			}
		}()

		p := tea.NewProgram(tui.New(api, cfg.Host), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
