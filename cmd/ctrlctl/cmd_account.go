package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ctrld-tools/controld-go/pkg/cli"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show account information",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Account().UserData(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", cli.Bold(user.Email), user.PK)
		fmt.Printf("  status:      %s\n", cli.StatusText(user.Status))
		fmt.Printf("  created:     %s\n", user.Date)
		fmt.Printf("  last active: %s\n", time.Unix(user.LastActive, 0).Format("2006-01-02 15:04"))
		fmt.Printf("  2fa:         %d\n", user.TwoFA)
		return nil
	},
}

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Show billing information",
}

var billingPaymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List payment history",
	RunE: func(cmd *cobra.Command, args []string) error {
		payments, err := api.Billing().Payments(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("DATE", "AMOUNT", "CURRENCY", "METHOD", "PRODUCT")
		for _, p := range payments {
			t.Row(p.Date, strconv.FormatFloat(p.Amount, 'f', 2, 64),
				p.Currency, p.Method, p.Product.Name)
		}
		t.Flush()
		return nil
	},
}

var billingSubscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "List subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		subs, err := api.Billing().Subscriptions(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "PRODUCT", "STATE", "STATUS", "NEXT BILL")
		for _, s := range subs {
			t.Row(s.PK, s.Product.Name, s.State, cli.StatusText(s.Status),
				time.Unix(s.NextBill, 0).Format("2006-01-02"))
		}
		t.Flush()
		return nil
	},
}

var billingProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List active products",
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := api.Billing().ActiveProducts(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "NAME", "TYPE", "EXPIRY")
		for _, p := range products {
			t.Row(strconv.Itoa(p.PK), p.Name, p.Type, p.Expiry)
		}
		t.Flush()
		return nil
	},
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show network and IP information",
}

var networkIPCmd = &cobra.Command{
	Use:   "ip",
	Short: "Show the caller's IP as seen by the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := api.Misc().IP(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", cli.Bold(info.IP), info.Type)
		fmt.Printf("  org:     %s (AS%d)\n", info.Org, info.ASN)
		fmt.Printf("  country: %s\n", info.Country)
		fmt.Printf("  pop:     %s\n", info.POP)
		return nil
	},
}

var networkStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-POP service availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		pops, err := api.Misc().NetworkStats(cmd.Context())
		if err != nil {
			return err
		}

		t := cli.NewTable("POP", "CITY", "COUNTRY", "API", "DNS", "PROXY")
		for _, p := range pops {
			t.Row(p.IATACode, p.CityName, p.CountryName,
				strconv.Itoa(p.Status.API), strconv.Itoa(p.Status.DNS), strconv.Itoa(p.Status.Pxy))
		}
		t.Flush()
		return nil
	},
}

func init() {
	billingCmd.AddCommand(billingPaymentsCmd, billingSubscriptionsCmd, billingProductsCmd)
	networkCmd.AddCommand(networkIPCmd, networkStatusCmd)
}
