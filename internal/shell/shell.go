// shell is the boundary to the host shell. A resolved session never
// touches the ambient process environment; it is materialized into the
// child's environment only, and the child's exit code becomes ours.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/shaws/shaws/internal/session"
)

// ExitError carries a finished child shell's exit code up to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("shell exited with code %d", e.Code)
}

// RunSpec selects the one-shot form: a command string for `shell -c`, or
// commands read from stdin for `shell -s`.
type RunSpec struct {
	FromStdin bool
	Command   string
	Args      []string
}

type Launcher struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewLauncher resolves the host shell up front so a missing shell
// surfaces before any credential exchange happens.
func NewLauncher() (*Launcher, error) {
	sh := os.Getenv("SHELL")
	if sh == "" {
		sh = "/bin/sh"
	}
	if _, err := exec.LookPath(sh); err != nil {
		return nil, fmt.Errorf("host shell %s not found: %s, %w", sh, err, session.ErrMissingDependency)
	}
	return &Launcher{
		Shell:  sh,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}, nil
}

// Enter spawns an interactive shell carrying the session credentials and
// blocks until it exits.
func (l *Launcher) Enter(s *session.Session) error {
	return l.spawn(s, nil)
}

// Run spawns the shell in one-shot mode and blocks until it exits.
func (l *Launcher) Run(s *session.Session, spec RunSpec) error {
	argv := []string{}
	if spec.FromStdin {
		argv = append(argv, "-s")
	} else {
		argv = append(argv, "-c", spec.Command)
	}
	argv = append(argv, spec.Args...)
	return l.spawn(s, argv)
}

func (l *Launcher) spawn(s *session.Session, argv []string) error {
	cmd := exec.Command(l.Shell, argv...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	cmd.Env = SessionEnv(os.Environ(), s)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("unable to start %s: %s, %w", l.Shell, err, session.ErrMissingDependency)
	}
	return nil
}

// SessionEnv extends a base environment with the session variables,
// dropping any stale credential entries first.
func SessionEnv(base []string, s *session.Session) []string {
	env := base
	for _, key := range [...]string{
		session.ACCESS_KEY_VAR,
		session.SECRET_KEY_VAR,
		session.SESSION_TOKEN_VAR,
		session.SESSION_ENV_VAR,
	} {
		env = filterEnv(env, key)
	}
	return append(env,
		fmt.Sprintf("%s=%s", session.ACCESS_KEY_VAR, s.AccessKeyID),
		fmt.Sprintf("%s=%s", session.SECRET_KEY_VAR, s.SecretAccessKey),
		fmt.Sprintf("%s=%s", session.SESSION_TOKEN_VAR, s.SessionToken),
		fmt.Sprintf("%s=%s", session.SESSION_ENV_VAR, s.Expiration.UTC().Format(time.RFC3339)),
	)
}

func filterEnv(env []string, key string) []string {
	result := []string{}
	prefix := key + "="
	for _, item := range env {
		if !strings.HasPrefix(item, prefix) {
			result = append(result, item)
		}
	}
	return result
}
