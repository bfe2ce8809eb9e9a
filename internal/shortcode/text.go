package shortcode

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

var ErrNotShortcode = errors.New("text is not a shortcode")

var (
	shortcodePattern = regexp.MustCompile(`^\[\s*([A-Za-z0-9_-]+)(\s[^\]]*)?\s*/?\]$`)
	attrPattern      = regexp.MustCompile(`([\w-]+)\s*=\s*"([^"]*)"|([\w-]+)\s*=\s*'([^']*)'|([\w-]+)\s*=\s*([^\s'"]+)`)
)

// ParseText splits `[tag key="value" other='x' bare=1]` into its tag and
// attributes. Attribute names are lowercased; values are kept verbatim.
func ParseText(text string) (string, map[string]string, error) {
	m := shortcodePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", nil, ErrNotShortcode
	}

	attrs := make(map[string]string)
	body := strings.TrimSuffix(strings.TrimSpace(m[2]), "/")
	for _, am := range attrPattern.FindAllStringSubmatch(body, -1) {
		switch {
		case am[1] != "":
			attrs[strings.ToLower(am[1])] = am[2]
		case am[3] != "":
			attrs[strings.ToLower(am[3])] = am[4]
		case am[5] != "":
			attrs[strings.ToLower(am[5])] = am[6]
		}
	}
	return m[1], attrs, nil
}

// Format renders a shortcode the way the admin generator prints it: keys
// sorted, empty values left out.
func Format(tag string, attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k, v := range attrs {
		if strings.TrimSpace(v) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(tag)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(strings.ReplaceAll(attrs[k], `"`, "&quot;"))
		b.WriteString(`"`)
	}
	b.WriteString("]")
	return b.String()
}
