// Package signal handles the naming side of linear-system I/O: default
// signal label generation, selectors over labelled signal lists, and the
// Resolver used to turn a selector into concrete indices.
package signal

import "fmt"

// DefaultLabels generates n labels of the form prefix[i]. The conventional
// prefixes are "u" for inputs and "y" for outputs.
func DefaultLabels(prefix string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s[%d]", prefix, i)
	}
	return labels
}

// DerivedName wraps a system name with a suffix marking how the derived
// system was obtained, e.g. DerivedName("sys", "sampled") -> "sys$sampled".
func DerivedName(name, suffix string) string {
	return name + "$" + suffix
}
