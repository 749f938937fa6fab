package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ctrld-tools/controld-go/pkg/cli"
	"github.com/ctrld-tools/controld-go/pkg/controld"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage DNS filtering profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles on the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := api.Profiles().Profiles().List(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "NAME", "RULES", "FILTERS", "UPDATED")
		for _, p := range profiles {
			t.Row(p.PK, p.Name,
				strconv.Itoa(p.Counters.Rule.Count),
				strconv.Itoa(p.Counters.Flt.Count),
				time.Unix(p.Updated, 0).Format("2006-01-02 15:04"))
		}
		t.Flush()
		return nil
	},
}

var (
	createProfileName  string
	createProfileClone string
)

var profilesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a blank profile or clone an existing one",
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := api.Profiles().Profiles().Create(cmd.Context(), &controld.CreateProfileForm{
			Name:           createProfileName,
			CloneProfileID: createProfileClone,
		})
		if err != nil {
			return err
		}
		for _, p := range profiles {
			fmt.Printf("Created profile %s (%s)\n", cli.Bold(p.Name), p.PK)
		}
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <profile-id>",
	Short: "Delete an orphaned profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Profiles().Profiles().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %s\n", args[0])
		return nil
	},
}

var profilesOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List configurable profile options",
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := api.Profiles().Profiles().Options(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "TITLE", "TYPE", "DEFAULT")
		for _, o := range options {
			t.Row(o.PK, o.Title, o.Type, string(o.DefaultValue))
		}
		t.Flush()
		return nil
	},
}

var profilesDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Show the profile's default rule",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}

		action, err := api.Profiles().DefaultRule().Get(cmd.Context(), profileID)
		if err != nil {
			return err
		}

		fmt.Printf("do: %s  status: %s", cli.DoText(action.Do), cli.StatusText(action.Status))
		if action.Via != "" {
			fmt.Printf("  via: %s", action.Via)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	profilesCreateCmd.Flags().StringVar(&createProfileName, "name", "", "name for the new profile")
	profilesCreateCmd.Flags().StringVar(&createProfileClone, "clone", "", "profile id to clone")

	profilesCmd.AddCommand(profilesListCmd, profilesCreateCmd, profilesDeleteCmd,
		profilesOptionsCmd, profilesDefaultCmd)
}
