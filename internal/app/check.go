// Where: internal/app/check.go
// What: Handler for the check command.
// Why: Expose the remote layer existence lookup directly.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/layers"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/ui"
)

func runCheck(cli CLI, deps Dependencies, out io.Writer) int {
	ctx := context.Background()

	region := regionForCommand(cli, deps)
	explicit := cli.Check.LayerVersion

	resolver := layers.NewResolver(deps.Checkers)
	arn, err := resolver.Resolve(ctx, region, cli.Check.Architecture, &explicit)
	if err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success(fmt.Sprintf("Layer version exists: %s", arn))
	return 0
}

// regionForCommand resolves the region for commands that may run without a
// readable descriptor: flag first, then the descriptor when it parses, then
// the environment.
func regionForCommand(cli CLI, deps Dependencies) string {
	if cli.Region != "" {
		return cli.Region
	}
	if content, err := os.ReadFile(cli.Template); err == nil {
		if doc, err := descriptor.Parse(content); err == nil {
			return resolveRegion(cli, doc, deps.Getenv)
		}
	}
	return deps.Getenv("AWS_REGION")
}
