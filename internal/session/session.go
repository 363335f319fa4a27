package session

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/aws/smithy-go"
)

var mfaCodeRegExp = regexp.MustCompile(`^[0-9]+$`)

// Session is the materialized short-lived credential set. It only ever
// lives in the environment of the spawned shell and its descendants.
type Session struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

type GetSessionTokenApi interface {
	GetSessionToken(ctx context.Context, params *sts.GetSessionTokenInput, optFns ...func(*sts.Options)) (*sts.GetSessionTokenOutput, error)
}

type AssumeRoleApi interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// CredentialApi is the subset of the STS surface the resolver touches.
type CredentialApi interface {
	GetSessionTokenApi
	AssumeRoleApi
}

// ClientProvider hands out an STS client authorized as the named profile.
// The role-assumption path uses the source profile's own long-lived
// credentials, hence clients are requested per profile name.
type ClientProvider interface {
	ClientForProfile(ctx context.Context, name string) (CredentialApi, error)
}

// ValidMFACode reports whether code is a well formed token code (digits only).
func ValidMFACode(code string) bool {
	return mfaCodeRegExp.MatchString(code)
}

// Resolve exchanges an MFA token code for a Session.
//
// A profile with a role_arn goes through assume-role under the source
// profile's credentials, anything else through get-session-token under the
// profile's own credentials. Configuration is checked up front so no STS
// call is made for an unresolvable profile chain.
func Resolve(ctx context.Context, provider ClientProvider, profile Profile, code string) (*Session, error) {
	if !ValidMFACode(code) {
		return nil, fmt.Errorf("token code must be digits only, got: %q, %w", code, ErrInvalidInput)
	}
	if profile.MFASerial == "" {
		return nil, fmt.Errorf("profile %s has no MFA device attached, run `%s attach` first, %w", profile.Name, SELF_NAME, ErrConfigMissing)
	}

	if profile.RoleArn != "" {
		if profile.SourceProfile == "" {
			return nil, fmt.Errorf("profile %s sets role_arn but no source_profile, %w", profile.Name, ErrConfigMissing)
		}
		svc, err := provider.ClientForProfile(ctx, profile.SourceProfile)
		if err != nil {
			return nil, fmt.Errorf("%s, %w", err, ErrCredentialService)
		}
		return assumeRole(ctx, svc, profile, code)
	}

	svc, err := provider.ClientForProfile(ctx, profile.Name)
	if err != nil {
		return nil, fmt.Errorf("%s, %w", err, ErrCredentialService)
	}
	return getSessionToken(ctx, svc, profile, code)
}

func getSessionToken(ctx context.Context, svc GetSessionTokenApi, profile Profile, code string) (*Session, error) {
	resp, err := svc.GetSessionToken(ctx, &sts.GetSessionTokenInput{
		SerialNumber:    aws.String(profile.MFASerial),
		TokenCode:       aws.String(code),
		DurationSeconds: aws.Int32(SESSION_TOKEN_MAX_DURATION),
	})
	if err != nil {
		return nil, serviceErr("get-session-token", err)
	}
	return fromCredentials(resp.Credentials)
}

func assumeRole(ctx context.Context, svc AssumeRoleApi, profile Profile, code string) (*Session, error) {
	resp, err := svc.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(profile.RoleArn),
		RoleSessionName: aws.String(SessionName(profile.Name)),
		SerialNumber:    aws.String(profile.MFASerial),
		TokenCode:       aws.String(code),
		DurationSeconds: aws.Int32(ASSUME_ROLE_MAX_DURATION),
	})
	if err != nil {
		return nil, serviceErr("assume-role", err)
	}
	return fromCredentials(resp.Credentials)
}

func fromCredentials(creds *types.Credentials) (*Session, error) {
	if creds == nil || creds.AccessKeyId == nil || creds.SecretAccessKey == nil ||
		creds.SessionToken == nil || creds.Expiration == nil {
		return nil, fmt.Errorf("response is missing credential fields, %w", ErrCredentialService)
	}
	return &Session{
		AccessKeyID:     aws.ToString(creds.AccessKeyId),
		SecretAccessKey: aws.ToString(creds.SecretAccessKey),
		SessionToken:    aws.ToString(creds.SessionToken),
		Expiration:      aws.ToTime(creds.Expiration),
	}, nil
}

func serviceErr(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s: %s, %w", op, apiErr.ErrorCode(), apiErr.ErrorMessage(), ErrCredentialService)
	}
	return fmt.Errorf("%s: %s, %w", op, err, ErrCredentialService)
}
