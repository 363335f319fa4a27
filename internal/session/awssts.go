package session

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// AwsClientProvider is the default ClientProvider backed by the shared
// AWS config/credentials files.
type AwsClientProvider struct{}

func (AwsClientProvider) ClientForProfile(ctx context.Context, name string) (CredentialApi, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithSharedConfigProfile(name),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load credentials for profile %s: %s", name, err)
	}
	return sts.NewFromConfig(cfg), nil
}
