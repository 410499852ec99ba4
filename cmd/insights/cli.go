// Where: cmd/insights/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/app"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/awsapi"
)

// buildDependencies constructs the runtime dependencies required by the CLI:
// the AWS-backed layer checker factory and the IAM policy verifier.
func buildDependencies() app.Dependencies {
	return app.Dependencies{
		Out:          os.Stdout,
		Checkers:     awsapi.Factory{},
		VerifyPolicy: awsapi.VerifyManagedPolicy,
	}
}
