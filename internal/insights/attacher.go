// Where: internal/insights/attacher.go
// What: Orchestration of per-function layer attachment and policy wiring.
// Why: Keep the packaging hook a single fail-fast pass over the descriptor.
package insights

import (
	"context"
	"fmt"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
)

// ManagedPolicyARN grants the execution role permission to publish Lambda
// Insights telemetry. Appended at most once per run.
const ManagedPolicyARN = "arn:aws:iam::aws:policy/CloudWatchLambdaInsightsExecutionRolePolicy"

// LayerResolver resolves a region/architecture/version tuple into a layer
// ARN. Implementations may call the Lambda API for explicit versions.
type LayerResolver interface {
	Resolve(ctx context.Context, region, architecture string, explicitVersion *int) (string, error)
}

// Attachment records one layer appended to a function.
type Attachment struct {
	Function string
	LayerARN string
}

// Report summarizes what a run changed.
type Report struct {
	Attachments    []Attachment
	PolicyAttached bool
}

// Attacher applies Lambda Insights settings to a deployment descriptor.
type Attacher struct {
	Resolver LayerResolver
	Region   string
}

// Run processes functions in declaration order, appending the resolved layer
// ARN to each enabled function and the managed policy once when at least one
// function was enabled and policy attachment is allowed. The first resolution
// error aborts the run; layers already appended are kept (no rollback, no
// partial artifact is written by callers on error).
func (a *Attacher) Run(ctx context.Context, doc *descriptor.Descriptor, settings Settings) (Report, error) {
	if a.Resolver == nil {
		return Report{}, errResolverNil
	}
	functions, err := doc.Functions()
	if err != nil {
		return Report{}, err
	}

	defaultArch := descriptor.ArchX8664
	if raw, ok := doc.ProviderValue("architecture"); ok {
		defaultArch, err = resolveArchitecture("provider.architecture", raw)
		if err != nil {
			return Report{}, err
		}
	}

	var report Report
	for _, fn := range functions {
		local, err := functionToggle(fn)
		if err != nil {
			return report, err
		}
		if !Decide(local, settings.DefaultEnabled) {
			continue
		}

		arch := defaultArch
		if raw, ok := fn.Props["architecture"]; ok {
			arch, err = resolveArchitecture(fmt.Sprintf("functions.%s.architecture", fn.Name), raw)
			if err != nil {
				return report, err
			}
		}

		arn, err := a.Resolver.Resolve(ctx, a.Region, arch, settings.ExplicitVersion)
		if err != nil {
			return report, err
		}
		if err := doc.AppendLayer(fn.Name, arn); err != nil {
			return report, err
		}
		report.Attachments = append(report.Attachments, Attachment{Function: fn.Name, LayerARN: arn})
	}

	if len(report.Attachments) > 0 && settings.AttachPolicy {
		if err := doc.AppendManagedPolicy(ManagedPolicyARN); err != nil {
			return report, err
		}
		report.PolicyAttached = true
	}
	return report, nil
}
