package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbonath/sonicapi/sonicos"
)

// These variables are set via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionRemote bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the version, git commit, and build date of sonicapi.
With --remote, also query the appliance for its firmware version.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "sonicapi %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", date)

		if !versionRemote {
			return nil
		}
		return withSession(func(api sonicos.API) error {
			result, err := api.Version()
			if err != nil {
				return fmt.Errorf("failed to fetch firmware version: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			return nil
		})
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionRemote, "remote", false, "also query the appliance firmware version")
	rootCmd.AddCommand(versionCmd)
}
