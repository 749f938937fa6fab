package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctrld-tools/controld-go/pkg/cli"
	"github.com/ctrld-tools/controld-go/pkg/controld"
	"github.com/ctrld-tools/controld-go/pkg/model"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Manage filters on a profile",
}

var filtersThirdParty bool

var filtersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List native (or third-party) filters and their states",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}

		t := cli.NewTable("PK", "NAME", "STATUS", "DESCRIPTION")
		if filtersThirdParty {
			filters, err := api.Profiles().Filters().ThirdParty(cmd.Context(), profileID)
			if err != nil {
				return err
			}
			for _, f := range filters {
				t.Row(f.PK, f.Name, cli.StatusText(f.Status), f.Description)
			}
		} else {
			filters, err := api.Profiles().Filters().Native(cmd.Context(), profileID)
			if err != nil {
				return err
			}
			for _, f := range filters {
				t.Row(f.PK, f.Name, cli.StatusText(f.Status), f.Description)
			}
		}
		t.Flush()
		return nil
	},
}

func setFilterStatus(cmd *cobra.Command, filter string, status model.Status) error {
	if err := requireProfile(); err != nil {
		return err
	}

	states, err := api.Profiles().Filters().Modify(cmd.Context(), profileID, filter,
		&controld.ModifyFilterForm{Status: status})
	if err != nil {
		return err
	}

	for id, action := range states {
		fmt.Printf("%s: %s\n", id, cli.StatusText(action.Status))
	}
	return nil
}

var filtersEnableCmd = &cobra.Command{
	Use:   "enable <filter>",
	Short: "Enable a filter on the profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFilterStatus(cmd, args[0], model.StatusEnabled)
	},
}

var filtersDisableCmd = &cobra.Command{
	Use:   "disable <filter>",
	Short: "Disable a filter on the profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setFilterStatus(cmd, args[0], model.StatusDisabled)
	},
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Browse the service catalog and profile service rules",
}

var servicesCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List service categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := api.Services().Categories(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "NAME", "SERVICES")
		for _, c := range categories {
			t.Row(c.PK, c.Name, fmt.Sprintf("%d", c.Count))
		}
		t.Flush()
		return nil
	},
}

var servicesListCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "List services in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := api.Services().InCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "NAME", "UNLOCK")
		for _, s := range services {
			t.Row(s.PK, s.Name, s.UnlockLocation)
		}
		t.Flush()
		return nil
	},
}

var servicesRulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List service rules configured on the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}

		services, err := api.Profiles().Services().List(cmd.Context(), profileID)
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "NAME", "CATEGORY", "DO", "STATUS")
		for _, s := range services {
			t.Row(s.PK, s.Name, s.Category, cli.DoText(s.Action.Do), cli.StatusText(s.Action.Status))
		}
		t.Flush()
		return nil
	},
}

var proxiesCmd = &cobra.Command{
	Use:   "proxies",
	Short: "List redirect locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		proxies, err := api.Profiles().Proxies().List(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("UID", "CITY", "COUNTRY")
		for _, p := range proxies {
			t.Row(p.UID, p.City, p.CountryName)
		}
		t.Flush()
		return nil
	},
}

func init() {
	filtersListCmd.Flags().BoolVar(&filtersThirdParty, "third-party", false, "list third-party filters instead of native")

	filtersCmd.AddCommand(filtersListCmd, filtersEnableCmd, filtersDisableCmd)
	servicesCmd.AddCommand(servicesCategoriesCmd, servicesListCmd, servicesRulesCmd)
}
