package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shaws/shaws/internal/profilecfg"
	"github.com/shaws/shaws/internal/util"
)

var attachCmd = &cobra.Command{
	Use:   "attach [PROFILE] MFA_SERIAL",
	Short: "Attach an MFA device to a profile",
	Long:  `Writes mfa_serial for the named profile into the shared AWS config file. PROFILE defaults to the active default profile.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  attach,
}

func init() {
	RootCmd.AddCommand(attachCmd)
}

func attach(cmd *cobra.Command, args []string) error {
	name, serial := defaultProfile(), args[0]
	if len(args) == 2 {
		name, serial = args[0], args[1]
	}

	store, err := profilecfg.New(profilecfg.ConfigFilePath())
	if err != nil {
		return err
	}
	if err := store.AttachDevice(name, serial); err != nil {
		return err
	}
	util.Writeln("attached MFA device %s to profile %s", serial, name)
	return nil
}
