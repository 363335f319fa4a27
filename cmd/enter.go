package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaws/shaws/internal/session"
	"github.com/shaws/shaws/internal/shell"
	"github.com/shaws/shaws/internal/util"
)

var (
	enterForce bool
	enterCmd   = &cobra.Command{
		Use:   "enter [PROFILE] [TOKEN_CODE]",
		Short: "Start an interactive shell carrying a fresh session",
		Long: `Exchanges the MFA token code for short-lived credentials and starts an
interactive shell with them exported. Prompts for the code when omitted.
The shell's exit code becomes this command's exit code.`,
		Args: cobra.MaximumNArgs(2),
		RunE: enter,
	}
)

func init() {
	enterCmd.Flags().BoolVar(&enterForce, "force", false, "Enter even when already inside an active session")
	RootCmd.AddCommand(enterCmd)
}

func enter(cmd *cobra.Command, args []string) error {
	// capability check before any credential exchange
	launcher, err := shell.NewLauncher()
	if err != nil {
		return err
	}
	if !enterForce && shell.NestedSession(os.Getenv) {
		return fmt.Errorf("already inside an active %s session, use --force to nest, %w",
			session.SELF_NAME, session.ErrInvalidInput)
	}

	profileName, code, _ := splitProfileCode(args)
	if code == "" {
		if code, err = readTokenCode(); err != nil {
			return err
		}
	}

	sess, err := resolveSession(cmd.Context(), profileName, code)
	if err != nil {
		return err
	}
	util.Traceln("session for %s valid until %s", profileName, sess.Expiration)
	return launcher.Enter(sess)
}
