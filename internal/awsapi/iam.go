// Where: internal/awsapi/iam.go
// What: IAM lookup for the managed policy ARN.
// Why: Let attach --verify-policy fail before mutating the descriptor.
package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// VerifyManagedPolicy checks that the managed policy ARN exists. IAM is a
// global service but the SDK still wants a region for signing.
func VerifyManagedPolicy(ctx context.Context, region, policyARN string) error {
	cfg, err := loadConfig(ctx, region)
	if err != nil {
		return err
	}
	client := iam.NewFromConfig(cfg)
	if _, err := client.GetPolicy(ctx, &iam.GetPolicyInput{PolicyArn: aws.String(policyARN)}); err != nil {
		return fmt.Errorf("verify managed policy %s: %w", policyARN, err)
	}
	return nil
}
