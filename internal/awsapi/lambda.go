// Where: internal/awsapi/lambda.go
// What: Lambda API adapter for the layer existence check.
// Why: Map SDK failures onto the resolver's distinguishable not-found kind.
package awsapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/smithy-go"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/layers"
)

type lambdaChecker struct {
	client *lambda.Client
}

func (c lambdaChecker) LayerVersionByARN(ctx context.Context, arn string) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("lambda client is nil")
	}
	out, err := c.client.GetLayerVersionByArn(ctx, &lambda.GetLayerVersionByArnInput{Arn: aws.String(arn)})
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%s: %w", arn, layers.ErrVersionNotFound)
		}
		return "", err
	}
	if out.LayerVersionArn != nil {
		return *out.LayerVersionArn, nil
	}
	return arn, nil
}

// isNotFound classifies the API failures that mean the layer version does
// not exist. Lambda reports a nonexistent version of another account's layer
// as AccessDeniedException rather than ResourceNotFoundException.
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "AccessDeniedException", "ResourceNotFoundException":
		return true
	}
	return false
}
