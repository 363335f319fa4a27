package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaws/shaws/cmd"
	"github.com/shaws/shaws/internal/session"
	"github.com/shaws/shaws/internal/shell"
	"github.com/shaws/shaws/internal/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	err := cmd.Execute(ctx)
	if err == nil {
		return 0
	}

	// a finished child shell is not a failure of ours, its code passes
	// through untouched
	var shellExit *shell.ExitError
	if errors.As(err, &shellExit) {
		return shellExit.Code
	}

	util.Writeln(err.Error())
	switch {
	case errors.Is(err, session.ErrNoSession):
		return 20
	case errors.Is(err, session.ErrSessionExpired):
		return 10
	case errors.Is(err, session.ErrMissingDependency):
		return 1
	}
	return 2
}
