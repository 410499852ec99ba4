// Where: internal/awsapi/lambda_test.go
// What: Tests for the Lambda failure classification.
// Why: The not-found kind must cover the API's access-denied disguise.
package awsapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/layers"
)

func TestIsNotFoundClassification(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		notFound bool
	}{
		{
			name:     "access denied means missing version",
			err:      &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"},
			notFound: true,
		},
		{
			name:     "resource not found",
			err:      &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "gone"},
			notFound: true,
		},
		{
			name:     "wrapped api error is still classified",
			err:      fmt.Errorf("operation error: %w", &smithy.GenericAPIError{Code: "AccessDeniedException"}),
			notFound: true,
		},
		{
			name:     "throttling propagates",
			err:      &smithy.GenericAPIError{Code: "TooManyRequestsException"},
			notFound: false,
		},
		{
			name:     "transport failure propagates",
			err:      errors.New("connection reset"),
			notFound: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNotFound(tc.err); got != tc.notFound {
				t.Fatalf("isNotFound(%v) = %v, want %v", tc.err, got, tc.notFound)
			}
		})
	}
}

func TestNotFoundWrappingMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("arn:aws:lambda:us-east-1:layer:x:1: %w", layers.ErrVersionNotFound)
	if !errors.Is(err, layers.ErrVersionNotFound) {
		t.Fatalf("wrapped sentinel must match errors.Is")
	}
}
