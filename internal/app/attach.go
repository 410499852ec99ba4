// Where: internal/app/attach.go
// What: Handler for the attach command.
// Why: Wire descriptor parsing, the attacher run, and write-back together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/insights"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/layers"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/ui"
)

func runAttach(cli CLI, deps Dependencies, out io.Writer) int {
	ctx := context.Background()

	content, err := os.ReadFile(cli.Template)
	if err != nil {
		return exitWithError(out, err)
	}
	doc, err := descriptor.Parse(content)
	if err != nil {
		return exitWithError(out, err)
	}

	settings, err := parseSettings(doc)
	if err != nil {
		return exitWithError(out, err)
	}

	region := resolveRegion(cli, doc, deps.Getenv)

	if cli.Attach.VerifyPolicy {
		if deps.VerifyPolicy == nil {
			return exitWithError(out, errors.New("policy verifier not configured"))
		}
		if err := deps.VerifyPolicy(ctx, region, insights.ManagedPolicyARN); err != nil {
			return exitWithError(out, err)
		}
	}

	attacher := insights.Attacher{Resolver: layers.NewResolver(deps.Checkers), Region: region}
	report, err := attacher.Run(ctx, doc, settings)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	printReport(console, report)

	rendered, err := doc.Marshal()
	if err != nil {
		return exitWithError(out, err)
	}
	if cli.Attach.DryRun {
		fmt.Fprint(out, string(rendered))
		return 0
	}

	target := cli.Attach.Output
	if target == "" {
		target = cli.Template
	}
	if err := os.WriteFile(target, rendered, 0o644); err != nil {
		return exitWithError(out, err)
	}
	console.Success(fmt.Sprintf("Descriptor written to %s", target))
	return 0
}

func parseSettings(doc *descriptor.Descriptor) (insights.Settings, error) {
	raw, ok := doc.Custom("lambdaInsights")
	if !ok {
		return insights.ParseSettings(nil)
	}
	return insights.ParseSettings(raw)
}

// resolveRegion applies the lookup order: flag, provider.region, AWS_REGION.
// An empty result is tolerated here; resolution fails later only if a layer
// actually needs the region.
func resolveRegion(cli CLI, doc *descriptor.Descriptor, getenv func(string) string) string {
	if cli.Region != "" {
		return cli.Region
	}
	if doc != nil {
		if raw, ok := doc.ProviderValue("region"); ok {
			if region, ok := raw.(string); ok && region != "" {
				return region
			}
		}
	}
	return getenv("AWS_REGION")
}

func printReport(console *ui.Console, report insights.Report) {
	if len(report.Attachments) == 0 {
		console.Info("No functions enabled for Lambda Insights")
		return
	}
	console.Header("🔎", "Lambda Insights attachments:")
	for _, attachment := range report.Attachments {
		console.Item(attachment.Function, attachment.LayerARN)
	}
	if report.PolicyAttached {
		console.ItemPlain("managed policy: " + insights.ManagedPolicyARN)
	}
}
