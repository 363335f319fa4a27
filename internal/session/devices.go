package session

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// MFADevice is one registered virtual or hardware MFA device.
type MFADevice struct {
	SerialNumber string    `json:"SerialNumber"`
	UserName     string    `json:"UserName"`
	EnableDate   time.Time `json:"EnableDate"`
}

type DeviceApi interface {
	GetUser(ctx context.Context, params *iam.GetUserInput, optFns ...func(*iam.Options)) (*iam.GetUserOutput, error)
	ListMFADevices(ctx context.Context, params *iam.ListMFADevicesInput, optFns ...func(*iam.Options)) (*iam.ListMFADevicesOutput, error)
}

// ListDevices resolves the profile's IAM username and lists the MFA
// devices registered against it.
func ListDevices(ctx context.Context, svc DeviceApi, profile Profile) ([]MFADevice, error) {
	user, err := svc.GetUser(ctx, &iam.GetUserInput{})
	if err != nil {
		return nil, serviceErr("get-user", err)
	}
	if user.User == nil || user.User.UserName == nil {
		return nil, fmt.Errorf("identity lookup returned no username, %w", ErrCredentialService)
	}

	resp, err := svc.ListMFADevices(ctx, &iam.ListMFADevicesInput{
		UserName: user.User.UserName,
	})
	if err != nil {
		return nil, serviceErr("list-mfa-devices", err)
	}

	devices := []MFADevice{}
	for _, d := range resp.MFADevices {
		devices = append(devices, MFADevice{
			SerialNumber: aws.ToString(d.SerialNumber),
			UserName:     aws.ToString(d.UserName),
			EnableDate:   aws.ToTime(d.EnableDate),
		})
	}
	return devices, nil
}

// DeviceClientForProfile builds the IAM client used by ListDevices.
func DeviceClientForProfile(ctx context.Context, name string) (DeviceApi, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithSharedConfigProfile(name),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load credentials for profile %s: %s", name, err)
	}
	return iam.NewFromConfig(cfg), nil
}
