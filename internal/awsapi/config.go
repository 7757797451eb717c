package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type Settings struct {
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
}

// LoadConfig builds the AWS configuration from the default credential
// chain, narrowed by an optional shared config profile and optional
// static credentials.
func LoadConfig(ctx context.Context, settings Settings) (cfg aws.Config, err error) {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(settings.Region),
	}
	if settings.Profile != "" {
		options = append(options, awsconfig.WithSharedConfigProfile(settings.Profile))
	}
	if settings.AccessKeyID != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				settings.AccessKeyID, settings.SecretAccessKey, "")))
	}

	cfg, err = awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading default config: %w", err)
	}
	return cfg, nil
}
