package session

const (
	SELF_NAME = "shaws"

	// environment contract shared with the spawned shell
	SESSION_ENV_VAR   = "SHAWS_SESSION"
	ACCESS_KEY_VAR    = "AWS_ACCESS_KEY_ID"
	SECRET_KEY_VAR    = "AWS_SECRET_ACCESS_KEY"
	SESSION_TOKEN_VAR = "AWS_SESSION_TOKEN"
	PROFILE_VAR       = "SHAWS_PROFILE"
	AWS_PROFILE_VAR   = "AWS_PROFILE"
	DEFAULT_PROFILE   = "default"

	// service-dependent ceilings, in seconds
	SESSION_TOKEN_MAX_DURATION = 129600 // 36h for GetSessionToken
	ASSUME_ROLE_MAX_DURATION   = 43200  // 12h for AssumeRole
)

// Profile is a named configuration set resolved from the shared config.
type Profile struct {
	Name          string
	MFASerial     string
	RoleArn       string
	SourceProfile string
}

// SessionName is the RoleSessionName sent on assume-role calls.
func SessionName(profileName string) string {
	return SELF_NAME + "-" + profileName
}
