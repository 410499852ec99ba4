// Where: internal/insights/decision.go
// What: Per-function toggle precedence.
// Why: Keep the three-tier rule in one auditable place.
package insights

// Decide resolves the effective toggle for one function. An explicit local
// false always wins; when both local and global are unset the function stays
// disabled; otherwise a local value takes precedence over the global default.
func Decide(local, globalDefault *bool) bool {
	if local != nil && !*local {
		return false
	}
	if local == nil && globalDefault == nil {
		return false
	}
	if local != nil {
		return *local
	}
	return *globalDefault
}
