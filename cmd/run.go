package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaws/shaws/internal/session"
	"github.com/shaws/shaws/internal/shell"
)

var runCmd = &cobra.Command{
	Use:   "run [PROFILE] TOKEN_CODE (STRING | -) [ARGS...]",
	Short: "Run a one-shot shell command under a fresh session",
	Long: `Exchanges the MFA token code for short-lived credentials and runs the host
shell non-interactively with them exported: with a command STRING as
'-c STRING ARGS...', or with the literal - reading commands from stdin as
'-s ARGS...'. The shell's exit code becomes this command's exit code.`,
	Args: cobra.MinimumNArgs(2),
	RunE: run,
}

func init() {
	// everything after the token code belongs to the child shell
	runCmd.Flags().SetInterspersed(false)
	RootCmd.AddCommand(runCmd)
}

func run(cmd *cobra.Command, args []string) error {
	launcher, err := shell.NewLauncher()
	if err != nil {
		return err
	}

	profileName, code, rest := splitProfileCode(args)
	if code == "" {
		return fmt.Errorf("run requires a digits-only TOKEN_CODE argument, %w", session.ErrInvalidInput)
	}
	if len(rest) == 0 {
		return fmt.Errorf("run requires a command STRING or - after the token code, %w", session.ErrInvalidInput)
	}

	spec := shell.RunSpec{}
	if rest[0] == "-" {
		spec.FromStdin = true
		spec.Args = rest[1:]
	} else {
		spec.Command = rest[0]
		spec.Args = rest[1:]
	}

	sess, err := resolveSession(cmd.Context(), profileName, code)
	if err != nil {
		return err
	}
	return launcher.Run(sess, spec)
}
