// Where: internal/insights/settings.go
// What: Run-wide settings parsed from the custom.lambdaInsights block.
// Why: Fail closed on type mismatches at the configuration boundary.
package insights

import (
	"fmt"
	"math"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
)

const customBlockField = "custom.lambdaInsights"

// Settings are computed once per run from the custom configuration block.
type Settings struct {
	DefaultEnabled  *bool
	AttachPolicy    bool
	ExplicitVersion *int
}

// ParseSettings builds Settings from the raw custom.lambdaInsights value.
// A nil value yields the defaults: insights off, policy attachment allowed.
func ParseSettings(raw any) (Settings, error) {
	settings := Settings{AttachPolicy: true}
	if raw == nil {
		return settings, nil
	}
	block, ok := raw.(map[string]any)
	if !ok {
		return Settings{}, &InvalidConfigTypeError{Field: customBlockField, Want: "mapping", Value: raw}
	}
	if value, ok := block["defaultLambdaInsights"]; ok {
		enabled, err := resolveToggle(customBlockField+".defaultLambdaInsights", value)
		if err != nil {
			return Settings{}, err
		}
		settings.DefaultEnabled = &enabled
	}
	if value, ok := block["attachPolicy"]; ok {
		attach, err := resolveToggle(customBlockField+".attachPolicy", value)
		if err != nil {
			return Settings{}, err
		}
		settings.AttachPolicy = attach
	}
	if value, ok := block["lambdaInsightsVersion"]; ok {
		version, err := resolveVersion(customBlockField+".lambdaInsightsVersion", value)
		if err != nil {
			return Settings{}, err
		}
		settings.ExplicitVersion = &version
	}
	return settings, nil
}

// resolveToggle accepts only an exact boolean so misconfiguration stays loud.
func resolveToggle(field string, raw any) (bool, error) {
	value, ok := raw.(bool)
	if !ok {
		return false, &InvalidConfigTypeError{Field: field, Want: "boolean", Value: raw}
	}
	return value, nil
}

// resolveVersion accepts only an exact positive integer. YAML and JSON
// decoders may hand integers over as float64, which is accepted when whole.
func resolveVersion(field string, raw any) (int, error) {
	mismatch := &InvalidConfigTypeError{Field: field, Want: "positive integer", Value: raw}
	var version int
	switch typed := raw.(type) {
	case int:
		version = typed
	case int64:
		version = int(typed)
	case uint64:
		version = int(typed)
	case float64:
		if typed != math.Trunc(typed) {
			return 0, mismatch
		}
		version = int(typed)
	default:
		return 0, mismatch
	}
	if version <= 0 {
		return 0, mismatch
	}
	return version, nil
}

// functionToggle reads the per-function lambdaInsights option as a tri-state
// value: nil when unset, strict boolean otherwise.
func functionToggle(fn descriptor.Function) (*bool, error) {
	raw, ok := fn.Props["lambdaInsights"]
	if !ok {
		return nil, nil
	}
	value, err := resolveToggle(fmt.Sprintf("functions.%s.lambdaInsights", fn.Name), raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// resolveArchitecture validates an architecture option against the two
// supported instruction-set variants.
func resolveArchitecture(field string, raw any) (string, error) {
	value, ok := raw.(string)
	if ok {
		switch value {
		case descriptor.ArchX8664, descriptor.ArchARM64:
			return value, nil
		}
	}
	return "", &InvalidConfigTypeError{
		Field: field,
		Want:  fmt.Sprintf("%q or %q", descriptor.ArchX8664, descriptor.ArchARM64),
		Value: raw,
	}
}
