package cmd

import (
	"testing"

	"github.com/shaws/shaws/internal/session"
)

func Test_splitProfileCode_with(t *testing.T) {
	ttests := map[string]struct {
		args          []string
		envProfile    string
		expectProfile string
		expectCode    string
		expectRest    []string
	}{
		"no args falls back to default": {
			[]string{}, "", "default", "", nil,
		},
		"digits only first arg is the token code": {
			[]string{"123456"}, "", "default", "123456", []string{},
		},
		"profile then code": {
			[]string{"staging", "123456"}, "", "staging", "123456", []string{},
		},
		"profile code and trailing shell args": {
			[]string{"staging", "123456", "echo hi", "a"}, "", "staging", "123456", []string{"echo hi", "a"},
		},
		"code and trailing shell args without profile": {
			[]string{"123456", "-", "a"}, "", "default", "123456", []string{"-", "a"},
		},
		"profile without code": {
			[]string{"staging"}, "", "staging", "", []string{},
		},
		"env override supplies the default profile": {
			[]string{"123456"}, "ops", "ops", "123456", []string{},
		},
	}
	for name, tt := range ttests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(session.PROFILE_VAR, tt.envProfile)
			t.Setenv(session.AWS_PROFILE_VAR, "")

			profile, code, rest := splitProfileCode(tt.args)
			if profile != tt.expectProfile {
				t.Errorf("got profile %s, wanted %s", profile, tt.expectProfile)
			}
			if code != tt.expectCode {
				t.Errorf("got code %s, wanted %s", code, tt.expectCode)
			}
			if len(rest) != len(tt.expectRest) {
				t.Fatalf("got rest %v, wanted %v", rest, tt.expectRest)
			}
			for i := range rest {
				if rest[i] != tt.expectRest[i] {
					t.Errorf("rest[%d]: got %s, wanted %s", i, rest[i], tt.expectRest[i])
				}
			}
		})
	}
}

func Test_defaultProfile_precedence(t *testing.T) {
	ttests := map[string]struct {
		shawsProfile string
		awsProfile   string
		expect       string
	}{
		"shaws override wins":       {"ops", "other", "ops"},
		"aws profile as fallback":   {"", "other", "other"},
		"nothing set means default": {"", "", "default"},
	}
	for name, tt := range ttests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(session.PROFILE_VAR, tt.shawsProfile)
			t.Setenv(session.AWS_PROFILE_VAR, tt.awsProfile)

			if got := defaultProfile(); got != tt.expect {
				t.Errorf("got %s, wanted %s", got, tt.expect)
			}
		})
	}
}
