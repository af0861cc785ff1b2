package search

import (
	"regexp"
	"strings"
)

// dateShape is one recognized surface syntax for date input. Shapes are
// tried in order; the first match wins.
type dateShape struct {
	re    *regexp.Regexp
	build func(m []string) string
}

var dateShapes = []dateShape{
	// YYYY
	{regexp.MustCompile(`^\d{4}$`), func(m []string) string {
		return m[0] + "%"
	}},
	// M/YYYY or MM/YYYY
	{regexp.MustCompile(`^(\d{1,2})/(\d{4})$`), func(m []string) string {
		return m[2] + "-" + pad2(m[1]) + "%"
	}},
	// YYYY-M or YYYY-MM
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})$`), func(m []string) string {
		return m[1] + "-" + pad2(m[2]) + "%"
	}},
	// YYYY-M-D, any zero-padding
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`), func(m []string) string {
		return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3]) + "%"
	}},
	// MM/DD/YYYY
	{regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`), func(m []string) string {
		return m[3] + "-" + pad2(m[1]) + "-" + pad2(m[2]) + "%"
	}},
}

// ParseDatePattern turns free-form date input into a LIKE pattern over the
// stored YYYY-MM-DD date column. Anything that matches none of the known
// shapes degrades to an arbitrary-substring pattern rather than an error;
// blank input yields no constraint (ok == false).
//
// This reformats surface syntax only. Invalid calendar values like 13/2022
// are zero-padded as-is, not rejected.
func ParseDatePattern(input string) (pattern string, ok bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}

	for _, shape := range dateShapes {
		if m := shape.re.FindStringSubmatch(s); m != nil {
			return shape.build(m), true
		}
	}

	return "%" + s + "%", true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
