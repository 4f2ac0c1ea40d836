package roles

import "strings"

// Role tags a client can hold. Roles are additive, never exclusive.
const (
	Guest  = "GUEST"
	Member = "MEMBER"
	ATeam  = "A-TEAM"
	Admin  = "ADMIN"
)

// Separator used for the flat column representation.
const Separator = ","

// Merge adds role to the set, preserving order. Merging a role that
// is already present returns the input unchanged, so
// Merge(Merge(r, x), x) == Merge(r, x).
func Merge(current []string, role string) []string {
	for _, r := range current {
		if r == role {
			return current
		}
	}
	out := make([]string, 0, len(current)+1)
	out = append(out, current...)
	return append(out, role)
}

// Has reports whether role is in the set.
func Has(current []string, role string) bool {
	for _, r := range current {
		if r == role {
			return true
		}
	}
	return false
}

// Parse splits the stored column value into an ordered role set,
// dropping empty entries.
func Parse(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, Separator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join serializes the role set back to its column form.
func Join(set []string) string {
	return strings.Join(set, Separator)
}

// MergeSerialized is the storage-level convenience: parse, merge,
// re-join in one step.
func MergeSerialized(current, role string) string {
	return Join(Merge(Parse(current), role))
}
