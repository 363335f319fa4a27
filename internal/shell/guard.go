package shell

import (
	"os"
	"path/filepath"

	ps "github.com/mitchellh/go-ps"

	"github.com/shaws/shaws/internal/session"
)

// processFinder matches ps.FindProcess.
type processFinder func(pid int) (ps.Process, error)

// NestedSession reports whether this invocation already runs inside a
// live shaws shell: the session variable is set and an ancestor process
// is this same binary. Process-table errors read as "not nested" so an
// odd platform never blocks entering a session.
func NestedSession(lookup func(string) string) bool {
	return nestedSession(lookup, ps.FindProcess, filepath.Base(os.Args[0]), os.Getppid())
}

func nestedSession(lookup func(string) string, find processFinder, self string, pid int) bool {
	if lookup(session.SESSION_ENV_VAR) == "" {
		return false
	}
	for pid > 1 {
		p, err := find(pid)
		if err != nil || p == nil {
			return false
		}
		if p.Executable() == self {
			return true
		}
		pid = p.PPid()
	}
	return false
}
