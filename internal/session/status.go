package session

import (
	"time"
)

type State int

const (
	NoSession State = iota
	Expired
	Active
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Expired:
		return "expired"
	}
	return "no session"
}

// Status is the result of inspecting one environment snapshot.
type Status struct {
	State       State
	Expiration  time.Time
	Remaining   time.Duration
	AccessKeyID string
}

// CheckActiveSession inspects an environment snapshot for a live session.
// It is a pure query: lookup is any env accessor (os.Getenv in production,
// a map in tests) and now is the comparison instant. A missing or
// unparsable expiry value reads as no session at all.
func CheckActiveSession(lookup func(string) string, now time.Time) Status {
	raw := lookup(SESSION_ENV_VAR)
	if raw == "" {
		return Status{State: NoSession}
	}
	expiry, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Status{State: NoSession}
	}
	if !now.Before(expiry) {
		return Status{State: Expired, Expiration: expiry}
	}
	return Status{
		State:       Active,
		Expiration:  expiry,
		Remaining:   expiry.Sub(now),
		AccessKeyID: lookup(ACCESS_KEY_VAR),
	}
}
