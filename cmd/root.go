package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbonath/sonicapi/config"
	"github.com/hbonath/sonicapi/output"
	"github.com/hbonath/sonicapi/sonicos"
)

var (
	// Global flags
	cfgFile      string
	outputFormat string
	hostFlag     string
	portFlag     int
	usernameFlag string
	passwordFlag string
	passwordFile string
	insecureFlag bool
	caFile       string
	verbose      bool
	dryRun       bool // --dry-run: print actions without executing them
	yesFlag      bool // --yes: skip confirmation prompts for destructive operations

	// Shared state set during PersistentPreRunE
	cfg       *config.Config
	client    sonicos.API
	formatter output.Formatter
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sonicapi",
	Short: "Manage SonicWall firewalls over the SonicOS API",
	Long: `sonicapi talks to the SonicOS management API of SonicWall firewall
appliances. It covers the configuration object families (address objects
and groups, service objects and groups, zones, access rules, NAT policies,
route policies), pending-config inspection and commit, and restart.

Configuration is read from ~/.sonicapi/config.yaml, SONICAPI_* environment
variables, and CLI flags, in that order. The appliance must have the
SonicOS API with RFC-2617 basic authentication enabled.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags
		if hostFlag != "" {
			cfg.Host = hostFlag
		}
		if portFlag != 0 {
			cfg.Port = portFlag
		}
		if usernameFlag != "" {
			cfg.Username = usernameFlag
		}
		if passwordFlag != "" {
			cfg.Password = passwordFlag
		}
		if passwordFile != "" {
			cfg.PasswordFile = passwordFile
		}
		if insecureFlag {
			cfg.Insecure = true
		}
		if caFile != "" {
			cfg.CAFile = caFile
		}
		if outputFormat != "" {
			cfg.Output = outputFormat
		}

		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

		// An injected formatter survives unless the user asked for a
		// format explicitly.
		if formatter == nil || outputFormat != "" {
			formatter = output.NewFormatter(cfg.Output)
		}

		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// SetClient allows tests to inject a mock client.
func SetClient(c sonicos.API) {
	client = c
}

// SetFormatter allows tests to inject a formatter.
func SetFormatter(f output.Formatter) {
	formatter = f
}

// newAPI returns the injected client when one was set, otherwise builds a
// real client from the merged configuration.
func newAPI() (sonicos.API, error) {
	if client != nil {
		return client, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	password, err := config.ResolvePassword(cfg.Password, cfg.PasswordFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve password: %w", err)
	}
	tlsConfig, err := cfg.BuildTLSConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build TLS config: %w", err)
	}

	return sonicos.New(sonicos.Config{
		Host:      cfg.Host,
		Port:      cfg.Port,
		Username:  cfg.Username,
		Password:  password,
		Insecure:  cfg.Insecure,
		TLSConfig: tlsConfig,
		Timeout:   cfg.Timeout(),
		Logger:    logger,
	})
}

// withSession logs in, runs fn against the API, and logs out afterwards.
func withSession(fn func(api sonicos.API) error) error {
	c, err := newAPI()
	if err != nil {
		return err
	}
	if _, err := c.Login(); err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	defer func() {
		if _, err := c.Logout(); err != nil {
			logger.Warn("logout failed", "error", err)
		}
	}()
	return fn(c)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sonicapi/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table, json, yaml (default \"table\")")
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "firewall hostname or IP (env: SONICAPI_HOST)")
	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "management port (default 443) (env: SONICAPI_PORT)")
	rootCmd.PersistentFlags().StringVar(&usernameFlag, "username", "", "admin username (env: SONICAPI_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&passwordFlag, "password", "", "admin password (env: SONICAPI_PASSWORD)")
	rootCmd.PersistentFlags().StringVar(&passwordFile, "password-file", "", "path to a file holding the admin password (env: SONICAPI_PASSWORD_FILE)")
	rootCmd.PersistentFlags().BoolVar(&insecureFlag, "insecure", false, "skip TLS certificate verification (env: SONICAPI_INSECURE)")
	rootCmd.PersistentFlags().StringVar(&caFile, "ca-file", "", "CA certificate for verifying the appliance (env: SONICAPI_CA_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print actions that would be taken without executing them")
	rootCmd.PersistentFlags().BoolVar(&yesFlag, "yes", false, "skip confirmation prompts for destructive operations")
}
