// Where: internal/insights/decision_test.go
// What: Tests for the toggle precedence rule.
// Why: The three-tier rule must hold for every tri-state combination.
package insights

import "testing"

func boolPtr(value bool) *bool {
	return &value
}

func TestDecidePrecedence(t *testing.T) {
	cases := []struct {
		name    string
		local   *bool
		global  *bool
		enabled bool
	}{
		{name: "local false wins over global true", local: boolPtr(false), global: boolPtr(true), enabled: false},
		{name: "local false wins over global false", local: boolPtr(false), global: boolPtr(false), enabled: false},
		{name: "local false wins over global unset", local: boolPtr(false), global: nil, enabled: false},
		{name: "local true wins over global false", local: boolPtr(true), global: boolPtr(false), enabled: true},
		{name: "local true with global true", local: boolPtr(true), global: boolPtr(true), enabled: true},
		{name: "local true with global unset", local: boolPtr(true), global: nil, enabled: true},
		{name: "unset falls back to global true", local: nil, global: boolPtr(true), enabled: true},
		{name: "unset falls back to global false", local: nil, global: boolPtr(false), enabled: false},
		{name: "both unset stays disabled", local: nil, global: nil, enabled: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.local, tc.global); got != tc.enabled {
				t.Fatalf("Decide(%v, %v) = %v, want %v", tc.local, tc.global, got, tc.enabled)
			}
		})
	}
}
