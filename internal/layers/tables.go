// Where: internal/layers/tables.go
// What: Static region tables of the latest published extension versions.
// Why: Resolve layer ARNs without a remote call when no version is pinned.
package layers

import (
	"sort"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
)

// Point-in-time snapshot of the latest published Lambda Insights extension
// versions per region. Regions missing here require an explicit
// lambdaInsightsVersion; the lookup never guesses.
var latestX8664 = map[string]int{
	"af-south-1":     13,
	"ap-east-1":      12,
	"ap-northeast-1": 32,
	"ap-northeast-2": 20,
	"ap-northeast-3": 5,
	"ap-south-1":     21,
	"ap-southeast-1": 21,
	"ap-southeast-2": 21,
	"ca-central-1":   20,
	"eu-central-1":   21,
	"eu-north-1":     20,
	"eu-south-1":     13,
	"eu-west-1":      21,
	"eu-west-2":      21,
	"eu-west-3":      20,
	"me-south-1":     13,
	"sa-east-1":      20,
	"us-east-1":      21,
	"us-east-2":      21,
	"us-west-1":      20,
	"us-west-2":      21,
}

// The Arm64 variant is published to fewer regions than the x86_64 one.
var latestARM64 = map[string]int{
	"ap-northeast-1": 2,
	"ap-south-1":     2,
	"ap-southeast-1": 2,
	"ap-southeast-2": 2,
	"eu-central-1":   2,
	"eu-west-1":      2,
	"eu-west-2":      2,
	"us-east-1":      2,
	"us-east-2":      2,
	"us-west-2":      2,
}

func table(architecture string) map[string]int {
	if architecture == descriptor.ArchARM64 {
		return latestARM64
	}
	return latestX8664
}

// LatestARN returns the latest known layer ARN for the region and
// architecture, or false when the region is not in the snapshot.
func LatestARN(region, architecture string) (string, bool) {
	version, ok := table(architecture)[region]
	if !ok {
		return "", false
	}
	return VersionARN(region, architecture, version), true
}

// Regions lists the snapshot regions for an architecture in sorted order.
func Regions(architecture string) []string {
	entries := table(architecture)
	regions := make([]string, 0, len(entries))
	for region := range entries {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}
