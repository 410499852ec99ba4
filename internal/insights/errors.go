// Where: internal/insights/errors.go
// What: Error kinds surfaced by the attacher.
// Why: Keep operator-facing failures matchable and consistently worded.
package insights

import (
	"errors"
	"fmt"
)

var errResolverNil = errors.New("layer resolver is nil")

// InvalidConfigTypeError reports a recognized option holding a value of the
// wrong type. No coercion is attempted; numeric or string truthiness is
// rejected the same as any other mismatch.
type InvalidConfigTypeError struct {
	Field string
	Want  string
	Value any
}

func (e *InvalidConfigTypeError) Error() string {
	return fmt.Sprintf("invalid value for %s: expected %s, got %s", e.Field, e.Want, typeName(e.Value))
}

// UnknownRegionError reports a region missing from the static layer tables.
type UnknownRegionError struct {
	Region       string
	Architecture string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf(
		"no Lambda Insights layer is known for region %q (%s); check the CloudWatch Lambda Insights documentation for currently supported regions, or pin lambdaInsightsVersion explicitly",
		e.Region, e.Architecture,
	)
}

// LayerVersionNotFoundError reports an explicit layer version that does not
// exist for the resolved region and architecture.
type LayerVersionNotFoundError struct {
	Version      int
	Region       string
	Architecture string
}

func (e *LayerVersionNotFoundError) Error() string {
	return fmt.Sprintf(
		"Lambda Insights layer version %d does not exist in region %s (%s)",
		e.Version, e.Region, e.Architecture,
	)
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int64, uint64, float64:
		return "number"
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	default:
		return fmt.Sprintf("%T", value)
	}
}
