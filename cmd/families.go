package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbonath/sonicapi/sonicos"
)

var (
	hostZone string
	hostIP   string
)

// createHostCmd is a shortcut for the common single-host address object.
var createHostCmd = &cobra.Command{
	Use:   "create-host <name>",
	Short: "Create a single-host IPv4 address object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if hostZone == "" || hostIP == "" {
			return errors.New("--zone and --ip are required")
		}
		return withSession(func(api sonicos.API) error {
			result, err := api.AddressObjects(sonicos.AddressObjectOptions{
				Method:  sonicos.MethodPost,
				Objects: []map[string]any{sonicos.HostAddressObject(args[0], hostZone, hostIP)},
			})
			if err != nil {
				return fmt.Errorf("failed to create address object: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			return nil
		})
	},
}

func init() {
	addressObjectCmd := newFamilyCommand(familySpec{
		use:    "address-object",
		noun:   "address object",
		plural: "address objects",
		short:  "Manage address objects",
		typed:  true,
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.AddressObjects(sonicos.AddressObjectOptions{
				Type:    p.Type,
				Method:  p.Method,
				Name:    p.Name,
				UUID:    p.UUID,
				Objects: p.Objects,
			})
		},
	})
	createHostCmd.Flags().StringVar(&hostZone, "zone", "", "zone the host belongs to")
	createHostCmd.Flags().StringVar(&hostIP, "ip", "", "host IP address")
	addressObjectCmd.AddCommand(createHostCmd)
	rootCmd.AddCommand(addressObjectCmd)

	rootCmd.AddCommand(newFamilyCommand(familySpec{
		use:       "address-group",
		noun:      "address group",
		plural:    "address groups",
		short:     "Manage address groups",
		versioned: true,
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.AddressGroups(sonicos.AddressGroupOptions{
				IPVersion: p.IPVersion,
				Method:    p.Method,
				Name:      p.Name,
				UUID:      p.UUID,
				Objects:   p.Objects,
			})
		},
	}))

	rootCmd.AddCommand(newFamilyCommand(familySpec{
		use:    "service-object",
		noun:   "service object",
		plural: "service objects",
		short:  "Manage service objects",
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.ServiceObjects(sonicos.ServiceObjectOptions{
				Method:  p.Method,
				Name:    p.Name,
				UUID:    p.UUID,
				Objects: p.Objects,
			})
		},
	}))

	rootCmd.AddCommand(newFamilyCommand(familySpec{
		use:    "service-group",
		noun:   "service group",
		plural: "service groups",
		short:  "Manage service groups",
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.ServiceGroups(sonicos.ServiceGroupOptions{
				Method:  p.Method,
				Name:    p.Name,
				UUID:    p.UUID,
				Objects: p.Objects,
			})
		},
	}))

	rootCmd.AddCommand(newFamilyCommand(familySpec{
		use:    "zone",
		noun:   "zone",
		plural: "zones",
		short:  "Manage security zones",
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.Zones(sonicos.ZoneOptions{
				Method:  p.Method,
				Name:    p.Name,
				UUID:    p.UUID,
				Objects: p.Objects,
			})
		},
	}))

	rootCmd.AddCommand(newFamilyCommand(familySpec{
		use:       "access-rule",
		noun:      "access rule",
		plural:    "access rules",
		short:     "Manage access rules",
		versioned: true,
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.AccessRules(sonicos.AccessRuleOptions{
				IPVersion: p.IPVersion,
				Method:    p.Method,
				Name:      p.Name,
				UUID:      p.UUID,
				Objects:   p.Objects,
			})
		},
	}))

	rootCmd.AddCommand(newFamilyCommand(familySpec{
		use:       "nat-policy",
		noun:      "NAT policy",
		plural:    "NAT policies",
		short:     "Manage NAT policies",
		versioned: true,
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.NATPolicies(sonicos.NATPolicyOptions{
				IPVersion: p.IPVersion,
				Method:    p.Method,
				Name:      p.Name,
				UUID:      p.UUID,
				Objects:   p.Objects,
			})
		},
	}))

	rootCmd.AddCommand(newFamilyCommand(familySpec{
		use:       "route-policy",
		noun:      "route policy",
		plural:    "route policies",
		short:     "Manage route policies",
		versioned: true,
		call: func(api sonicos.API, p familyParams) (map[string]any, error) {
			return api.RoutePolicies(sonicos.RoutePolicyOptions{
				IPVersion: p.IPVersion,
				Method:    p.Method,
				Name:      p.Name,
				UUID:      p.UUID,
				Objects:   p.Objects,
			})
		},
	}))
}
