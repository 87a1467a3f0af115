package grading

import "strings"

// ContainsFold matches answers that contain keyword after lowercasing both sides.
// An empty keyword never matches.
func ContainsFold(keyword string) Predicate {
	k := strings.ToLower(keyword)
	return func(answer string) bool {
		if k == "" {
			return false
		}
		return strings.Contains(strings.ToLower(answer), k)
	}
}

// AnyOf matches when at least one of ps matches.
func AnyOf(ps ...Predicate) Predicate {
	return func(answer string) bool {
		for _, p := range ps {
			if p != nil && p(answer) {
				return true
			}
		}
		return false
	}
}
