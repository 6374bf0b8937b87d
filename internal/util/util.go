package util

import "strings"

// MakeTextList joins items into a readable list using an oxford comma and
// the given conjunction ("and" for a list of things that all apply, "or"
// for a list of alternatives such as the terminals an ACTION-table miss
// expected).
func MakeTextList(items []string, conjunction string) string {
	if len(items) < 1 {
		return ""
	}

	if len(items) == 1 {
		return items[0]
	}
	if len(items) == 2 {
		return items[0] + " " + conjunction + " " + items[1]
	}

	out := make([]string, len(items))
	copy(out, items)
	out[len(out)-1] = conjunction + " " + out[len(out)-1]
	return strings.Join(out, ", ")
}
