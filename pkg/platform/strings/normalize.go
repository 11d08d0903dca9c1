// Package strings normalises user supplied value lists before parsing.
package strings

import (
	"strings"
)

// UniqueTrimmed trims surrounding whitespace from each value and drops
// empties and repeats, keeping first-seen order.
//
// Example:
//
//	UniqueTrimmed([]string{" 111000025", "2/1110", "111000025 ", ""})
//	// Returns: []string{"111000025", "2/1110"}
//
// Values that differ only in representation (MICR vs fraction) are kept;
// deciding they are the same number is the parser's job.
func UniqueTrimmed(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SplitList splits comma or whitespace separated values, so a single CLI
// argument may carry several routing numbers.
func SplitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
