package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hbonath/sonicapi/sonicos"
)

// familySpec describes one configuration object family exposed as a
// command group with list/get/create/update/delete subcommands.
type familySpec struct {
	use    string // command name, e.g. "address-object"
	noun   string // singular for help text, e.g. "address object"
	plural string // plural for help text, e.g. "address objects"
	short  string

	typed     bool // takes --type (ipv4, ipv6, mac, fqdn)
	versioned bool // takes --ip-version (ipv4, ipv6)

	// call issues the request for this family.
	call func(api sonicos.API, p familyParams) (map[string]any, error)
}

// familyParams carries the options the subcommands collect from flags.
type familyParams struct {
	Type      sonicos.AddressType
	IPVersion sonicos.IPVersion
	Method    sonicos.Method
	Name      string
	UUID      string
	Objects   []map[string]any
}

// newFamilyCommand builds the command group for one object family.
func newFamilyCommand(spec familySpec) *cobra.Command {
	parent := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Long:  "List, inspect, and manage " + spec.plural + " on the firewall.",
	}

	var (
		typeFlag      string
		ipVersionFlag string
		nameFlag      string
		uuidFlag      string
		fileFlag      string
	)

	params := func(method sonicos.Method) familyParams {
		p := familyParams{
			Method: method,
			Name:   nameFlag,
			UUID:   uuidFlag,
		}
		if spec.typed {
			p.Type = sonicos.AddressType(typeFlag)
		}
		if spec.versioned {
			p.IPVersion = sonicos.IPVersion(ipVersionFlag)
		}
		return p
	}

	run := func(cmd *cobra.Command, p familyParams) error {
		return withSession(func(api sonicos.API) error {
			result, err := spec.call(api, p)
			if err != nil {
				return fmt.Errorf("failed to %s %s: %w", actionWord(p.Method), spec.plural, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
			return nil
		})
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all " + spec.plural,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, params(sonicos.MethodGet))
		},
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch one " + spec.noun + " by name or uuid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSelector(nameFlag, uuidFlag, true); err != nil {
				return err
			}
			return run(cmd, params(sonicos.MethodGet))
		},
	}
	getCmd.Flags().StringVar(&nameFlag, "name", "", "select by object name")
	getCmd.Flags().StringVar(&uuidFlag, "uuid", "", "select by object uuid")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create " + spec.plural + " from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			objects, err := readObjects(cmd, fileFlag)
			if err != nil {
				return err
			}
			p := params(sonicos.MethodPost)
			p.Name, p.UUID = "", ""
			p.Objects = objects
			return run(cmd, p)
		},
	}
	createCmd.Flags().StringVar(&fileFlag, "file", "", "JSON file with the object list (\"-\" for stdin)")

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update " + spec.plural + " from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSelector(nameFlag, uuidFlag, false); err != nil {
				return err
			}
			objects, err := readObjects(cmd, fileFlag)
			if err != nil {
				return err
			}
			p := params(sonicos.MethodPut)
			p.Objects = objects
			return run(cmd, p)
		},
	}
	updateCmd.Flags().StringVar(&nameFlag, "name", "", "update the object with this name")
	updateCmd.Flags().StringVar(&uuidFlag, "uuid", "", "update the object with this uuid")
	updateCmd.Flags().StringVar(&fileFlag, "file", "", "JSON file with the object list (\"-\" for stdin)")

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one " + spec.noun + " by name or uuid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSelector(nameFlag, uuidFlag, true); err != nil {
				return err
			}
			target := nameFlag
			if target == "" {
				target = uuidFlag
			}
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "(dry-run) would delete %s %q\n", spec.noun, target)
				return nil
			}
			if !confirm(cmd, fmt.Sprintf("Delete %s %q?", spec.noun, target)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			return run(cmd, params(sonicos.MethodDelete))
		},
	}
	deleteCmd.Flags().StringVar(&nameFlag, "name", "", "delete the object with this name")
	deleteCmd.Flags().StringVar(&uuidFlag, "uuid", "", "delete the object with this uuid")

	if spec.typed {
		parent.PersistentFlags().StringVar(&typeFlag, "type", "ipv4", "address object type: ipv4, ipv6, mac, fqdn")
	}
	if spec.versioned {
		parent.PersistentFlags().StringVar(&ipVersionFlag, "ip-version", "ipv4", "IP version: ipv4, ipv6")
	}

	parent.AddCommand(listCmd)
	parent.AddCommand(getCmd)
	parent.AddCommand(createCmd)
	parent.AddCommand(updateCmd)
	parent.AddCommand(deleteCmd)

	return parent
}

// actionWord maps a request method to the verb used in error messages.
func actionWord(m sonicos.Method) string {
	switch m {
	case sonicos.MethodPost:
		return "create"
	case sonicos.MethodPut:
		return "update"
	case sonicos.MethodDelete:
		return "delete"
	default:
		return "fetch"
	}
}

// checkSelector validates the --name/--uuid pair before any request is
// built.
func checkSelector(name, id string, required bool) error {
	if name != "" && id != "" {
		return errors.New("--name and --uuid are mutually exclusive")
	}
	if required && name == "" && id == "" {
		return errors.New("either --name or --uuid is required")
	}
	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid uuid %q: %w", id, err)
		}
	}
	return nil
}

// readObjects loads the JSON object list for create/update from a file, or
// from stdin when path is "-". Accepts either a JSON array or a single
// object.
func readObjects(cmd *cobra.Command, path string) ([]map[string]any, error) {
	if path == "" {
		return nil, errors.New("--file is required")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read objects: %w", err)
	}

	var objects []map[string]any
	if err := json.Unmarshal(data, &objects); err == nil {
		return objects, nil
	}
	var single map[string]any
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("failed to parse objects JSON: %w", err)
	}
	return []map[string]any{single}, nil
}

// confirm prompts for confirmation unless --yes was given.
func confirm(cmd *cobra.Command, prompt string) bool {
	if yesFlag {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Scan()
	return strings.ToLower(strings.TrimSpace(scanner.Text())) == "y"
}
