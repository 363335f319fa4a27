package shell_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shaws/shaws/internal/session"
	"github.com/shaws/shaws/internal/shell"
)

var testSession = &session.Session{
	AccessKeyID:     "AKIA123",
	SecretAccessKey: "456",
	SessionToken:    "abcd",
	Expiration:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
}

func Test_SessionEnv_appends_the_contract_variables(t *testing.T) {
	got := shell.SessionEnv([]string{"PATH=/usr/bin"}, testSession)

	expected := []string{
		"PATH=/usr/bin",
		"AWS_ACCESS_KEY_ID=AKIA123",
		"AWS_SECRET_ACCESS_KEY=456",
		"AWS_SESSION_TOKEN=abcd",
		"SHAWS_SESSION=2030-01-01T00:00:00Z",
	}
	if len(got) != len(expected) {
		t.Fatalf("got %d entries, wanted %d: %v", len(got), len(expected), got)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("entry %d: got %s, wanted %s", i, got[i], want)
		}
	}
}

func Test_SessionEnv_filters_stale_credentials(t *testing.T) {
	base := []string{
		"AWS_ACCESS_KEY_ID=stale",
		"PATH=/usr/bin",
		"AWS_SECRET_ACCESS_KEY=stale",
		"AWS_SESSION_TOKEN=stale",
		"SHAWS_SESSION=2020-01-01T00:00:00Z",
		"AWS_SESSION_TOKEN_TTL=unrelated",
	}

	got := shell.SessionEnv(base, testSession)

	for _, item := range got {
		if strings.HasSuffix(item, "=stale") {
			t.Errorf("stale entry survived: %s", item)
		}
	}
	joined := strings.Join(got, "\n")
	if !strings.Contains(joined, "AWS_SESSION_TOKEN_TTL=unrelated") {
		t.Error("unrelated variable with a shared prefix was dropped")
	}
	if !strings.Contains(joined, "SHAWS_SESSION=2030-01-01T00:00:00Z") {
		t.Error("fresh session expiry missing from environment")
	}
}

func Test_Run_command_string_form(t *testing.T) {
	out := &bytes.Buffer{}
	l := &shell.Launcher{Shell: "/bin/sh", Stdout: out, Stderr: out}

	err := l.Run(testSession, shell.RunSpec{Command: `printf '%s' "$AWS_ACCESS_KEY_ID"`})
	if err != nil {
		t.Fatalf("got %s, wanted <nil>", err)
	}
	if out.String() != "AKIA123" {
		t.Errorf("got %q, wanted the exported access key", out.String())
	}
}

func Test_Run_stdin_form(t *testing.T) {
	out := &bytes.Buffer{}
	l := &shell.Launcher{
		Shell:  "/bin/sh",
		Stdin:  strings.NewReader(`printf '%s' "$SHAWS_SESSION"`),
		Stdout: out,
		Stderr: out,
	}

	err := l.Run(testSession, shell.RunSpec{FromStdin: true})
	if err != nil {
		t.Fatalf("got %s, wanted <nil>", err)
	}
	if out.String() != "2030-01-01T00:00:00Z" {
		t.Errorf("got %q, wanted the session expiry", out.String())
	}
}

func Test_Run_propagates_child_exit_code(t *testing.T) {
	l := &shell.Launcher{Shell: "/bin/sh"}

	err := l.Run(testSession, shell.RunSpec{Command: "exit 3"})
	var exitErr *shell.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("got %v, wanted an exit error", err)
	}
	if exitErr.Code != 3 {
		t.Errorf("got code %d, wanted 3", exitErr.Code)
	}
}

func Test_NewLauncher_missing_shell_is_a_dependency_error(t *testing.T) {
	t.Setenv("SHELL", "/nonexistent/shell-binary")

	_, err := shell.NewLauncher()
	if !errors.Is(err, session.ErrMissingDependency) {
		t.Errorf("got %s, wanted %s", err, session.ErrMissingDependency)
	}
}
