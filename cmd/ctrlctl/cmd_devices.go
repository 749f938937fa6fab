package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ctrld-tools/controld-go/pkg/cli"
	"github.com/ctrld-tools/controld-go/pkg/controld"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage devices (DNS resolver endpoints)",
}

var deviceListFilter string

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices on the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		devices, err := api.Devices().List(cmd.Context(), controld.DeviceFilter(deviceListFilter))
		if err != nil {
			return err
		}

		t := cli.NewTable("PK", "NAME", "STATUS", "PROFILE", "CLIENTS", "DOH")
		for _, d := range devices {
			t.Row(d.PK, d.Name, cli.StatusText(d.Status), d.Profile.Name,
				strconv.Itoa(d.ClientCount), d.Resolvers.DOH)
		}
		t.Flush()
		return nil
	},
}

var (
	createDeviceName    string
	createDeviceProfile string
	createDeviceIcon    string
)

var devicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new device",
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := api.Devices().Create(cmd.Context(), &controld.CreateDeviceForm{
			Name:      createDeviceName,
			ProfileID: createDeviceProfile,
			Icon:      createDeviceIcon,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created device %s (%s)\n", cli.Bold(device.Name), device.PK)
		fmt.Printf("  DoH: %s\n", device.Resolvers.DOH)
		fmt.Printf("  DoT: %s\n", device.Resolvers.DOT)
		return nil
	},
}

var devicesDeleteCmd = &cobra.Command{
	Use:   "delete <device-id>",
	Short: "Delete a device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Devices().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted device %s\n", args[0])
		return nil
	},
}

var devicesTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List allowed device types",
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := api.Devices().Types(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(cli.Bold(types.OS.Name))
		fmt.Println(cli.Bold(types.Browser.Name))
		fmt.Println(cli.Bold(types.TV.Name))
		fmt.Printf("%s (setup: %s)\n", cli.Bold(types.Router.Name), types.Router.SetupURL)
		return nil
	},
}

func init() {
	devicesListCmd.Flags().StringVar(&deviceListFilter, "filter", "all", "device class: all, users, routers")

	devicesCreateCmd.Flags().StringVar(&createDeviceName, "name", "", "device name (required)")
	devicesCreateCmd.Flags().StringVar(&createDeviceProfile, "profile-id", "", "profile to enforce (required)")
	devicesCreateCmd.Flags().StringVar(&createDeviceIcon, "icon", "", "device type icon (required)")
	devicesCreateCmd.MarkFlagRequired("name")
	devicesCreateCmd.MarkFlagRequired("profile-id")
	devicesCreateCmd.MarkFlagRequired("icon")

	devicesCmd.AddCommand(devicesListCmd, devicesCreateCmd, devicesDeleteCmd, devicesTypesCmd)
}
