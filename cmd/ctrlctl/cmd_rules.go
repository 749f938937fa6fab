package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ctrld-tools/controld-go/pkg/cli"
	"github.com/ctrld-tools/controld-go/pkg/controld"
	"github.com/ctrld-tools/controld-go/pkg/model"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage custom rules on a profile",
}

var rulesFolderID int

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List custom rules in a folder (root by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}

		var folder *int
		if cmd.Flags().Changed("folder") {
			folder = &rulesFolderID
		}

		rules, err := api.Profiles().CustomRules().List(cmd.Context(), profileID, folder)
		if err != nil {
			return err
		}

		t := cli.NewTable("HOSTNAME", "DO", "STATUS", "VIA", "GROUP")
		for _, r := range rules {
			t.Row(r.PK, cli.DoText(r.Action.Do), cli.StatusText(r.Action.Status),
				r.Action.Via, strconv.Itoa(r.Group))
		}
		t.Flush()
		return nil
	},
}

var (
	ruleVia   string
	ruleViaV6 string
)

var rulesBlockCmd = &cobra.Command{
	Use:   "block <hostname>...",
	Short: "Create BLOCK rules for hostnames",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createRules(cmd, model.DoBlock, args)
	},
}

var rulesBypassCmd = &cobra.Command{
	Use:   "bypass <hostname>...",
	Short: "Create BYPASS rules for hostnames",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createRules(cmd, model.DoBypass, args)
	},
}

var rulesSpoofCmd = &cobra.Command{
	Use:   "spoof <hostname>...",
	Short: "Create SPOOF rules for hostnames (--via required)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createRules(cmd, model.DoSpoof, args)
	},
}

var rulesRedirectCmd = &cobra.Command{
	Use:   "redirect <hostname>...",
	Short: "Create REDIRECT rules for hostnames (--via proxy id required)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return createRules(cmd, model.DoRedirect, args)
	},
}

func createRules(cmd *cobra.Command, do model.Do, hostnames []string) error {
	if err := requireProfile(); err != nil {
		return err
	}

	rules, err := api.Profiles().CustomRules().Create(cmd.Context(), profileID, &controld.CreateRuleForm{
		Do:        do,
		Status:    model.StatusEnabled,
		Via:       ruleVia,
		ViaV6:     ruleViaV6,
		Hostnames: hostnames,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created %d %s rule(s)\n", len(rules), do)
	return nil
}

var rulesDeleteCmd = &cobra.Command{
	Use:   "delete <hostname>",
	Short: "Delete the rules for a hostname",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		if err := api.Profiles().CustomRules().Delete(cmd.Context(), profileID, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted rules for %s\n", args[0])
		return nil
	},
}

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Manage rule folders on a profile",
}

var foldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rule folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}

		folders, err := api.Profiles().RuleFolders().List(cmd.Context(), profileID)
		if err != nil {
			return err
		}

		t := cli.NewTable("ID", "NAME", "DO", "STATUS", "RULES")
		for _, f := range folders {
			t.Row(strconv.Itoa(f.PK), f.Group, cli.DoText(f.Action.Do),
				cli.StatusText(f.Action.Status), strconv.Itoa(f.Count))
		}
		t.Flush()
		return nil
	},
}

var foldersDeleteCmd = &cobra.Command{
	Use:   "delete <folder-id>",
	Short: "Delete a folder and every rule inside it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		folder, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("folder id must be a number: %q", args[0])
		}
		if err := api.Profiles().RuleFolders().Delete(cmd.Context(), profileID, folder); err != nil {
			return err
		}
		fmt.Printf("Deleted folder %d\n", folder)
		return nil
	},
}

func init() {
	rulesListCmd.Flags().IntVar(&rulesFolderID, "folder", 0, "folder id (omit for root)")

	for _, c := range []*cobra.Command{rulesSpoofCmd, rulesRedirectCmd} {
		c.Flags().StringVar(&ruleVia, "via", "", "spoof target or proxy identifier")
		c.Flags().StringVar(&ruleViaV6, "via-v6", "", "IPv6 spoof target")
	}

	rulesCmd.AddCommand(rulesListCmd, rulesBlockCmd, rulesBypassCmd,
		rulesSpoofCmd, rulesRedirectCmd, rulesDeleteCmd)
	foldersCmd.AddCommand(foldersListCmd, foldersDeleteCmd)
}
