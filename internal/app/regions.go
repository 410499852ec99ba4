// Where: internal/app/regions.go
// What: Handler for the regions command.
// Why: Let operators inspect the static snapshot the resolver relies on.
package app

import (
	"fmt"
	"io"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/layers"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/ui"
)

func runRegions(cli CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)
	console.Header("🗺️", fmt.Sprintf("Known Lambda Insights layers (%s):", cli.Regions.Architecture))
	for _, region := range layers.Regions(cli.Regions.Architecture) {
		arn, ok := layers.LatestARN(region, cli.Regions.Architecture)
		if !ok {
			continue
		}
		console.Item(region, arn)
	}
	return 0
}
