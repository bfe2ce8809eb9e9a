package shortcode

import (
	"math"
	"strings"

	"github.com/example/products-slider/internal/query"
)

// Given returns v, or "" when v is one of the values a shortcode treats as
// not set: the empty string and "0".
func Given(v string) string {
	if v == "0" {
		return ""
	}
	return v
}

// ParseBool accepts "1", "true", "on" and "yes" (any case) as true.
// Everything else, including garbage, is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// Atoi reads the leading integer of s the way a lenient template engine does:
// "12px" is 12, "3.7" is 3, "abc" is 0.
func Atoi(s string) int {
	n, _ := leadingInt(s)
	return n
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		d := int(r - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else {
			n = n*10 + d
		}
		digits++
	}
	if neg {
		n = -n
	}
	return n, digits > 0
}

// SplitIDs parses a comma-separated id list into distinct non-negative ints.
// Pieces without a leading number are skipped.
func SplitIDs(s string) []int {
	var ids []int
	seen := map[int]struct{}{}
	for _, part := range strings.Split(s, ",") {
		n, ok := leadingInt(part)
		if !ok {
			continue
		}
		if n < 0 {
			n = -n
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		ids = append(ids, n)
	}
	return ids
}

// SplitStrings parses a comma-separated list into distinct sanitised strings.
func SplitStrings(s string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, part := range strings.Split(s, ",") {
		part = query.SanitizeText(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
