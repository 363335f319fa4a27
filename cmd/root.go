package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shaws/shaws/internal/session"
	"github.com/shaws/shaws/internal/util"
)

var (
	verbose bool
	RootCmd = &cobra.Command{
		Use:   "shaws",
		Short: "MFA-authenticated credential sessions for the AWS CLI",
		Long: `Exchanges an MFA token code for short-lived AWS credentials and drops you
into a shell carrying them. The session lives only in that shell's process
tree. Invoked with no arguments it reports on the session you are inside of,
if any.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          status,
	}
)

func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(func() {
		util.IsTraceEnabled = verbose
	})
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func status(cmd *cobra.Command, args []string) error {
	st := session.CheckActiveSession(os.Getenv, time.Now())
	switch st.State {
	case session.Active:
		util.Writeln("session active until %s (%s remaining)",
			st.Expiration.Local().Format("2006-01-02 15:04:05"), formatRemaining(st.Remaining))
		if st.AccessKeyID != "" {
			util.Writeln("%s=%s", session.ACCESS_KEY_VAR, st.AccessKeyID)
		}
		return nil
	case session.Expired:
		return session.ErrSessionExpired
	}
	return session.ErrNoSession
}

func formatRemaining(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
