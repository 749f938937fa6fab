package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ctrld-tools/controld-go/pkg/controld"
)

var (
	mcOutput        string
	mcExcludeWiFi   []string
	mcExcludeDomain []string
	mcDontSign      bool
	mcClientID      string
)

var mobileconfigCmd = &cobra.Command{
	Use:   "mobileconfig <device-id>",
	Short: "Generate an Apple .mobileconfig DNS profile for a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &controld.MobileConfigOptions{
			ExcludeWiFi:   mcExcludeWiFi,
			ExcludeDomain: mcExcludeDomain,
			DontSign:      mcDontSign,
			ClientID:      mcClientID,
		}

		if err := api.MobileConfig().GenerateToFile(cmd.Context(), args[0], mcOutput, opts); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", mcOutput)
		return nil
	},
}

func init() {
	mobileconfigCmd.Flags().StringVarP(&mcOutput, "output", "o", "controld.mobileconfig", "output file path")
	mobileconfigCmd.Flags().StringSliceVar(&mcExcludeWiFi, "exclude-wifi", nil, "Wi-Fi SSIDs that bypass ControlD")
	mobileconfigCmd.Flags().StringSliceVar(&mcExcludeDomain, "exclude-domain", nil, "domains that bypass ControlD")
	mobileconfigCmd.Flags().BoolVar(&mcDontSign, "dont-sign", false, "skip profile signing")
	mobileconfigCmd.Flags().StringVar(&mcClientID, "client-id", "", "client name identifier")
}
