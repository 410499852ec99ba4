// Where: internal/layers/resolve.go
// What: Region/architecture/version resolution into a layer ARN.
// Why: Decide between the static snapshot and the remote existence check.
package layers

import (
	"context"
	"errors"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/insights"
)

// Resolver turns a region/architecture/version tuple into a layer ARN. The
// remote API is consulted only for explicit versions; without one the static
// snapshot is authoritative and unknown regions fail explicitly.
type Resolver struct {
	Clients CheckerFactory

	checker Checker
}

// NewResolver builds a Resolver using the given client factory.
func NewResolver(clients CheckerFactory) *Resolver {
	return &Resolver{Clients: clients}
}

// Resolve implements insights.LayerResolver.
func (r *Resolver) Resolve(ctx context.Context, region, architecture string, explicitVersion *int) (string, error) {
	if region == "" {
		return "", errRegionRequired
	}

	if explicitVersion == nil {
		arn, ok := LatestARN(region, architecture)
		if !ok {
			return "", &insights.UnknownRegionError{Region: region, Architecture: architecture}
		}
		return arn, nil
	}

	checker, err := r.layerChecker(ctx, region)
	if err != nil {
		return "", err
	}

	arn := VersionARN(region, architecture, *explicitVersion)
	canonical, err := checker.LayerVersionByARN(ctx, arn)
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			return "", &insights.LayerVersionNotFoundError{
				Version:      *explicitVersion,
				Region:       region,
				Architecture: architecture,
			}
		}
		return "", err
	}
	return canonical, nil
}

// layerChecker builds the remote checker on first use so runs without an
// explicit version never touch AWS configuration.
func (r *Resolver) layerChecker(ctx context.Context, region string) (Checker, error) {
	if r.checker != nil {
		return r.checker, nil
	}
	if r.Clients == nil {
		return nil, errCheckerFactoryNil
	}
	checker, err := r.Clients.LayerChecker(ctx, region)
	if err != nil {
		return nil, err
	}
	r.checker = checker
	return checker, nil
}
