// Where: internal/awsapi/factory.go
// What: AWS client construction for remote lookups.
// Why: Encapsulate SDK configuration behind the resolver's factory port.
package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/layers"
)

// Factory builds AWS-backed clients using the default credential chain.
type Factory struct{}

// LayerChecker implements layers.CheckerFactory.
func (Factory) LayerChecker(ctx context.Context, region string) (layers.Checker, error) {
	cfg, err := loadConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return lambdaChecker{client: lambda.NewFromConfig(cfg)}, nil
}

func loadConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		return aws.Config{}, fmt.Errorf("region is required")
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}
