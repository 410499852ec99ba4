// Where: internal/insights/attacher_test.go
// What: Tests for the attacher orchestration.
// Why: Precedence, ordering, policy wiring, and fail-fast must hold together.
package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
)

type resolveCall struct {
	region  string
	arch    string
	version *int
}

type fakeResolver struct {
	calls  []resolveCall
	failOn int
	err    error
}

func (f *fakeResolver) Resolve(_ context.Context, region, arch string, version *int) (string, error) {
	f.calls = append(f.calls, resolveCall{region: region, arch: arch, version: version})
	if f.failOn == len(f.calls) && f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("arn:aws:lambda:%s:580247275435:layer:test-%s:%d", region, arch, len(f.calls)), nil
}

func mustParse(t *testing.T, content string) *descriptor.Descriptor {
	t.Helper()
	doc, err := descriptor.Parse([]byte(content))
	if err != nil {
		t.Fatalf("parse descriptor: %v", err)
	}
	return doc
}

func TestRunLocalFalseWinsOverGlobalDefault(t *testing.T) {
	doc := mustParse(t, `
functions:
  worker:
    handler: worker.handler
    lambdaInsights: false
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	report, err := attacher.Run(context.Background(), doc, Settings{DefaultEnabled: boolPtr(true), AttachPolicy: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Attachments) != 0 || report.PolicyAttached {
		t.Fatalf("expected no changes, got %+v", report)
	}
	if len(resolver.calls) != 0 {
		t.Fatalf("expected no resolver calls, got %d", len(resolver.calls))
	}
}

func TestRunGlobalDefaultAppliesInDeclarationOrder(t *testing.T) {
	doc := mustParse(t, `
provider:
  region: us-east-1
functions:
  zeta:
    handler: zeta.handler
  alpha:
    handler: alpha.handler
    layers:
      - arn:aws:lambda:us-east-1:111111111111:layer:existing:1
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	report, err := attacher.Run(context.Background(), doc, Settings{DefaultEnabled: boolPtr(true), AttachPolicy: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Attachments) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(report.Attachments))
	}
	if report.Attachments[0].Function != "zeta" || report.Attachments[1].Function != "alpha" {
		t.Fatalf("attachments out of declaration order: %+v", report.Attachments)
	}
	if !report.PolicyAttached {
		t.Fatalf("expected policy attached")
	}

	rendered, err := doc.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if count := strings.Count(string(rendered), ManagedPolicyARN); count != 1 {
		t.Fatalf("expected policy once, found %d occurrences", count)
	}
	if !strings.Contains(string(rendered), "layer:existing:1") {
		t.Fatalf("pre-existing layer entry was lost:\n%s", rendered)
	}
}

func TestRunBothUnsetIsNoOp(t *testing.T) {
	doc := mustParse(t, `
functions:
  worker:
    handler: worker.handler
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	report, err := attacher.Run(context.Background(), doc, Settings{AttachPolicy: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Attachments) != 0 || report.PolicyAttached {
		t.Fatalf("expected no changes, got %+v", report)
	}
}

func TestRunAttachPolicyDisabled(t *testing.T) {
	doc := mustParse(t, `
functions:
  worker:
    lambdaInsights: true
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	report, err := attacher.Run(context.Background(), doc, Settings{AttachPolicy: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(report.Attachments))
	}
	if report.PolicyAttached {
		t.Fatalf("expected no policy attachment")
	}
	rendered, err := doc.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(rendered), ManagedPolicyARN) {
		t.Fatalf("policy appended despite attachPolicy false:\n%s", rendered)
	}
}

func TestRunArchitectureOverrides(t *testing.T) {
	doc := mustParse(t, `
provider:
  architecture: x86_64
functions:
  graviton:
    lambdaInsights: true
    architecture: arm64
  intel:
    lambdaInsights: true
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	if _, err := attacher.Run(context.Background(), doc, Settings{AttachPolicy: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolver.calls) != 2 {
		t.Fatalf("expected 2 resolver calls, got %d", len(resolver.calls))
	}
	if resolver.calls[0].arch != descriptor.ArchARM64 {
		t.Fatalf("expected arm64 for function override, got %s", resolver.calls[0].arch)
	}
	if resolver.calls[1].arch != descriptor.ArchX8664 {
		t.Fatalf("expected x86_64 from provider default, got %s", resolver.calls[1].arch)
	}
}

func TestRunProviderArchitectureDefault(t *testing.T) {
	doc := mustParse(t, `
provider:
  architecture: arm64
functions:
  worker:
    lambdaInsights: true
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "eu-west-1"}

	if _, err := attacher.Run(context.Background(), doc, Settings{AttachPolicy: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolver.calls[0].arch != descriptor.ArchARM64 {
		t.Fatalf("expected provider arm64 default, got %s", resolver.calls[0].arch)
	}
}

func TestRunFailsFastOnResolutionError(t *testing.T) {
	doc := mustParse(t, `
functions:
  first:
    lambdaInsights: true
  second:
    lambdaInsights: true
  third:
    lambdaInsights: true
`)
	resolveErr := errors.New("throttled")
	resolver := &fakeResolver{failOn: 2, err: resolveErr}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	report, err := attacher.Run(context.Background(), doc, Settings{AttachPolicy: true})
	if !errors.Is(err, resolveErr) {
		t.Fatalf("expected resolution error, got %v", err)
	}
	if len(resolver.calls) != 2 {
		t.Fatalf("expected processing to stop at the failing function, got %d calls", len(resolver.calls))
	}
	if len(report.Attachments) != 1 || report.Attachments[0].Function != "first" {
		t.Fatalf("unexpected partial report: %+v", report)
	}
	if report.PolicyAttached {
		t.Fatalf("policy must not be attached on a failed run")
	}
}

func TestRunWithoutFunctionsSectionIsNoOp(t *testing.T) {
	doc := mustParse(t, `
service: bare
provider:
  region: us-east-1
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	report, err := attacher.Run(context.Background(), doc, Settings{DefaultEnabled: boolPtr(true), AttachPolicy: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Attachments) != 0 || report.PolicyAttached {
		t.Fatalf("expected no-op, got %+v", report)
	}
}

func TestRunRejectsInvalidToggleTypeBeforeResolution(t *testing.T) {
	doc := mustParse(t, `
functions:
  worker:
    lambdaInsights: "yes"
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	_, err := attacher.Run(context.Background(), doc, Settings{AttachPolicy: true})
	var typeErr *InvalidConfigTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected InvalidConfigTypeError, got %v", err)
	}
	if typeErr.Field != "functions.worker.lambdaInsights" {
		t.Fatalf("unexpected field: %q", typeErr.Field)
	}
	if len(resolver.calls) != 0 {
		t.Fatalf("resolver must not run after a type error")
	}
}

func TestRunRejectsUnknownArchitecture(t *testing.T) {
	doc := mustParse(t, `
functions:
  worker:
    lambdaInsights: true
    architecture: riscv
`)
	resolver := &fakeResolver{}
	attacher := Attacher{Resolver: resolver, Region: "us-east-1"}

	_, err := attacher.Run(context.Background(), doc, Settings{AttachPolicy: true})
	var typeErr *InvalidConfigTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected InvalidConfigTypeError, got %v", err)
	}
	if typeErr.Field != "functions.worker.architecture" {
		t.Fatalf("unexpected field: %q", typeErr.Field)
	}
}
