// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/layers"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/ui"
	"github.com/awslabs/serverless-plugin-lambda-insights/internal/version"
	"github.com/joho/godotenv"
)

// Dependencies holds the injected collaborators required for command
// execution, so tests can swap the AWS-backed implementations for fakes.
type Dependencies struct {
	Out          io.Writer
	Checkers     layers.CheckerFactory
	VerifyPolicy func(ctx context.Context, region, policyARN string) error
	Getenv       func(string) string
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Template string `short:"t" default:"serverless.yml" help:"Path to the deployment descriptor"`
	Region   string `short:"r" help:"Deployment region (default: provider.region, then AWS_REGION)"`
	EnvFile  string `name:"env-file" help:"Path to .env file"`

	Attach  AttachCmd  `cmd:"" help:"Attach the Lambda Insights layer and execution policy"`
	Check   CheckCmd   `cmd:"" help:"Verify an explicit layer version exists"`
	Regions RegionsCmd `cmd:"" help:"List regions with a known layer version"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type AttachCmd struct {
	Output       string `short:"o" help:"Write the result to this path instead of in place"`
	DryRun       bool   `name:"dry-run" help:"Print the mutated descriptor instead of writing"`
	VerifyPolicy bool   `name:"verify-policy" help:"Verify the managed policy exists before attaching"`
}

type CheckCmd struct {
	LayerVersion int    `name:"layer-version" required:"" help:"Layer version to check"`
	Architecture string `name:"arch" default:"x86_64" enum:"x86_64,arm64" help:"Target architecture"`
}

type RegionsCmd struct {
	Architecture string `name:"arch" default:"x86_64" enum:"x86_64,arm64" help:"Target architecture"`
}

type VersionCmd struct{}

// Run parses the command line and dispatches to the matching handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
		deps.Out = out
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	loadEnvFile(cli, out)

	handlers := map[string]func(CLI, Dependencies, io.Writer) int{
		"attach":  runAttach,
		"check":   runCheck,
		"regions": runRegions,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int {
			fmt.Fprintln(out, version.GetVersion())
			return 0
		},
	}
	if handler, ok := handlers[ctx.Command()]; ok {
		return handler(cli, deps, out)
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

// loadEnvFile loads the requested env file, or .env from the current
// directory when present. Failures are warnings, not errors.
func loadEnvFile(cli CLI, out io.Writer) {
	console := ui.New(out)
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			console.Warn(fmt.Sprintf("failed to load env file %s: %v", cli.EnvFile, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			console.Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

// exitWithError writes the error and maps it to exit code 1.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
