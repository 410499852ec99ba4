// Where: internal/layers/arn.go
// What: ARN construction for the Lambda Insights extension layer.
// Why: Keep the identifier templates in one place.
package layers

import (
	"fmt"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
)

// The extension layers are published from a single AWS-owned account in the
// standard partition.
const accountID = "580247275435"

func layerName(architecture string) string {
	if architecture == descriptor.ArchARM64 {
		return "LambdaInsightsExtension-Arm64"
	}
	return "LambdaInsightsExtension"
}

// VersionARN builds the fully qualified ARN for an explicit layer version.
func VersionARN(region, architecture string, version int) string {
	return fmt.Sprintf("arn:aws:lambda:%s:%s:layer:%s:%d", region, accountID, layerName(architecture), version)
}
