// Where: cmd/insights/main.go
// What: CLI entrypoint.
// Why: Execute insights commands with configured dependencies.
package main

import (
	"os"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
