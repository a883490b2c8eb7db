package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Slugify lowercases a name and turns its internal spaces into hyphens, the
// form the pricing site uses for path segments. Leading/trailing whitespace
// is stripped first so the slug never carries edge hyphens.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "-")
}

// NormalizeName collapses a name down to a comparison key: lowercase with
// all whitespace removed.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	return whitespaceRegex.ReplaceAllString(name, "")
}

// CollapseLines strips each line of s and joins them without separators.
// Price cells on the pricing site wrap their text across indented lines.
func CollapseLines(s string) string {
	out := strings.Builder{}
	for _, line := range strings.Split(s, "\n") {
		out.WriteString(strings.TrimSpace(line))
	}
	return out.String()
}
