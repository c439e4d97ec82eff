package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbonath/sonicapi/sonicos"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Debug commands for testing",
	Long:  `Debug commands for testing connections and inspecting data.`,
}

var debugDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Test the connection and dump address objects",
	Long: `Log in, fetch the IPv4 and IPv6 address objects, and print the raw
responses as indented JSON. This is useful for testing the connection and
capturing data for mocks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(api sonicos.API) error {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			for _, addrType := range []sonicos.AddressType{sonicos.TypeIPv4, sonicos.TypeIPv6} {
				result, err := api.AddressObjects(sonicos.AddressObjectOptions{Type: addrType})
				if err != nil {
					return fmt.Errorf("failed to fetch %s address objects: %w", addrType, err)
				}
				if err := encoder.Encode(result); err != nil {
					return fmt.Errorf("failed to encode response: %w", err)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugDumpCmd)
}
