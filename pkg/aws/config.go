package aws

import (
	"context"
	"fmt"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// LoadAWSConfig loads the default AWS config (env/shared credentials, region
// from AWS_REGION).
func LoadAWSConfig(ctx context.Context) (sdkaws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return cfg, fmt.Errorf("failed to load aws config: %w", err)
	}
	return cfg, nil
}
