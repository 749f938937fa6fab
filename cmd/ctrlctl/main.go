// Ctrlctl - ControlD account management CLI
//
// A CLI tool for managing ControlD DNS resolvers:
//   - Devices (resolver endpoints) and their enforced profiles
//   - Profiles, custom rules, rule folders, and filters
//   - Billing, proxies, and network status
//   - Apple .mobileconfig profile generation
//
// The API token is resolved in order: --token flag, CONTROLD_TOKEN
// environment variable, ~/.controld/settings.yaml, interactive prompt.
//
// Examples:
//
//	ctrlctl devices list
//	ctrlctl profiles list
//	ctrlctl rules list --profile <profile-id>
//	ctrlctl rules block --profile <profile-id> ads.example.com
//	ctrlctl mobileconfig <device-id> -o dns.mobileconfig
package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ctrld-tools/controld-go/pkg/controld"
	"github.com/ctrld-tools/controld-go/pkg/settings"
	"github.com/ctrld-tools/controld-go/pkg/util"
	"github.com/ctrld-tools/controld-go/pkg/version"
)

var (
	// Global option flags
	tokenFlag string
	baseURL   string
	logLevel  string
	profileID string

	// Global state
	userSettings *settings.Settings
	api          *controld.Client
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "ctrlctl",
	Short:             "ControlD account management tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Ctrlctl manages ControlD devices, profiles, and rules from the terminal.

The API token is resolved from --token, CONTROLD_TOKEN, the settings
file, or an interactive prompt, in that order.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		if logLevel != "" {
			if err := util.SetLogLevel(logLevel); err != nil {
				return err
			}
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		token, err := resolveToken()
		if err != nil {
			return err
		}

		url := baseURL
		if url == "" {
			url = userSettings.BaseURL
		}

		api = controld.New(controld.Config{Token: token, BaseURL: url})

		if profileID == "" {
			profileID = userSettings.DefaultProfile
		}

		return nil
	},
}

// resolveToken walks the token sources in priority order, falling back
// to a terminal prompt when nothing else is set.
func resolveToken() (string, error) {
	if tokenFlag != "" {
		return tokenFlag, nil
	}
	if token := os.Getenv("CONTROLD_TOKEN"); token != "" {
		return token, nil
	}
	if userSettings.Token != "" {
		return userSettings.Token, nil
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("no API token: set --token, CONTROLD_TOKEN, or run 'ctrlctl settings set token'")
	}

	fmt.Fprint(os.Stderr, "API token: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("no API token provided")
	}

	return string(raw), nil
}

// isSettingsOrHelp reports whether cmd can run without an API client.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "help", "version", "completion":
			return true
		}
	}
	return false
}

// requireProfile errors when no profile id is in scope.
func requireProfile() error {
	if profileID == "" {
		return fmt.Errorf("no profile selected: use --profile or 'ctrlctl settings set default_profile'")
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ctrlctl", version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "API bearer token")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&profileID, "profile", "p", "", "profile id for profile-scoped commands")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(foldersCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(proxiesCmd)
	rootCmd.AddCommand(billingCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(mobileconfigCmd)
	rootCmd.AddCommand(settingsCmd)
}
