// Where: internal/layers/ports.go
// What: Outbound dependencies of layer resolution.
// Why: Keep AWS SDK specifics out of the resolver logic.
package layers

import (
	"context"
	"errors"
)

var (
	errRegionRequired    = errors.New("deployment region is not configured (set provider.region, --region, or AWS_REGION)")
	errCheckerFactoryNil = errors.New("layer checker factory is nil")
)

// ErrVersionNotFound marks the distinguishable remote lookup failure meaning
// the requested layer version does not exist.
var ErrVersionNotFound = errors.New("layer version not found")

// Checker performs the remote existence lookup for a fully qualified layer
// version ARN, returning the canonical ARN on success. A missing version is
// reported by wrapping ErrVersionNotFound; any other failure is returned
// untouched.
type Checker interface {
	LayerVersionByARN(ctx context.Context, arn string) (string, error)
}

// CheckerFactory builds a Checker bound to a region.
type CheckerFactory interface {
	LayerChecker(ctx context.Context, region string) (Checker, error)
}
