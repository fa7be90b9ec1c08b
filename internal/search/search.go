// Package search provides lookups over string collections.
package search

// FindIndex returns the index of the first item exactly equal to target.
// The comparison is case-sensitive and whole-string. The second result is
// false, and the index -1, when no item matches.
func FindIndex(items []string, target string) (int, bool) {
	for i, item := range items {
		if item == target {
			return i, true
		}
	}
	return -1, false
}
