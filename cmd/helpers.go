package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/shaws/shaws/internal/profilecfg"
	"github.com/shaws/shaws/internal/session"
	"github.com/shaws/shaws/internal/util"
)

// defaultProfile resolves the profile name when argv omits it.
func defaultProfile() string {
	if p := os.Getenv(session.PROFILE_VAR); p != "" {
		return p
	}
	if p := os.Getenv(session.AWS_PROFILE_VAR); p != "" {
		return p
	}
	return session.DEFAULT_PROFILE
}

// splitProfileCode resolves the optional leading PROFILE argument for
// enter/run. Token codes are digits only, profile names are not, which
// makes the first argument unambiguous.
func splitProfileCode(args []string) (profile, code string, rest []string) {
	profile = defaultProfile()
	if len(args) == 0 {
		return profile, "", nil
	}
	if session.ValidMFACode(args[0]) {
		return profile, args[0], args[1:]
	}
	profile = args[0]
	if len(args) > 1 && session.ValidMFACode(args[1]) {
		return profile, args[1], args[2:]
	}
	return profile, "", args[1:]
}

func loadProfile(name string) (session.Profile, error) {
	store, err := profilecfg.New(profilecfg.ConfigFilePath())
	if err != nil {
		return session.Profile{}, err
	}
	return store.Profile(name)
}

func resolveSession(ctx context.Context, profileName, code string) (*session.Session, error) {
	profile, err := loadProfile(profileName)
	if err != nil {
		return nil, err
	}
	util.Traceln("resolving session for profile %s (role: %q, source: %q)",
		profile.Name, profile.RoleArn, profile.SourceProfile)
	return session.Resolve(ctx, session.AwsClientProvider{}, profile, code)
}

// readTokenCode prompts for the MFA token code with echo disabled. Only
// usable when stdin is a terminal; anything else must pass the code in argv.
func readTokenCode() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("token code required when stdin is not a terminal, %w", session.ErrInvalidInput)
	}
	util.Write("MFA token code: ")
	raw, err := term.ReadPassword(fd)
	util.Writeln("")
	if err != nil {
		return "", fmt.Errorf("unable to read token code: %s, %w", err, session.ErrInvalidInput)
	}
	return strings.TrimSpace(string(raw)), nil
}
