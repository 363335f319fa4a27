package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaws/shaws/internal/session"
	"github.com/shaws/shaws/internal/util"
)

var (
	devicesAsJson bool
	lsDevicesCmd  = &cobra.Command{
		Use:     "ls-devices [PROFILE]",
		Aliases: []string{"list-devices"},
		Short:   "List the MFA devices registered for the profile's user",
		Args:    cobra.MaximumNArgs(1),
		RunE:    lsDevices,
	}
)

func init() {
	lsDevicesCmd.Flags().BoolVar(&devicesAsJson, "json", false, "Emit the device list as JSON on stdout")
	RootCmd.AddCommand(lsDevicesCmd)
}

func lsDevices(cmd *cobra.Command, args []string) error {
	name := defaultProfile()
	if len(args) == 1 {
		name = args[0]
	}

	svc, err := session.DeviceClientForProfile(cmd.Context(), name)
	if err != nil {
		return fmt.Errorf("%s, %w", err, session.ErrCredentialService)
	}
	devices, err := session.ListDevices(cmd.Context(), svc, session.Profile{Name: name})
	if err != nil {
		return err
	}

	if devicesAsJson {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(devices)
	}

	if len(devices) == 0 {
		util.Writeln("no MFA devices registered for profile %s", name)
		return nil
	}
	for _, d := range devices {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", d.SerialNumber, d.UserName, d.EnableDate.Local().Format("2006-01-02"))
	}
	return nil
}
