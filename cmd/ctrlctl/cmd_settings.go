package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctrld-tools/controld-go/pkg/cli"
	"github.com/ctrld-tools/controld-go/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent CLI settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}

		token := "(not set)"
		if s.Token != "" {
			token = "(set)"
		}
		fmt.Printf("%s %s\n", cli.DotPad("token", 20), token)
		fmt.Printf("%s %s\n", cli.DotPad("base_url", 20), s.BaseURL)
		fmt.Printf("%s %s\n", cli.DotPad("default_profile", 20), s.DefaultProfile)
		fmt.Printf("%s %s\n", cli.DotPad("default_device", 20), s.DefaultDevice)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting (token, base_url, default_profile, default_device)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return err
		}

		switch args[0] {
		case "token":
			s.SetToken(args[1])
		case "base_url":
			s.SetBaseURL(args[1])
		case "default_profile":
			s.SetDefaultProfile(args[1])
		case "default_device":
			s.SetDefaultDevice(args[1])
		default:
			return fmt.Errorf("unknown setting %q", args[0])
		}

		if err := s.Save(); err != nil {
			return err
		}
		fmt.Printf("Set %s\n", args[0])
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		if err := s.Save(); err != nil {
			return err
		}
		fmt.Println("Settings cleared")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
}
