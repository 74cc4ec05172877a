package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	// revisionPattern identifies trailing revision tags such as "-a1" or "-B12".
	revisionPattern = regexp.MustCompile(`-.\d+$`)
	// countPrefixPattern identifies print-quantity prefixes such as "2x_" or "12x-".
	countPrefixPattern = regexp.MustCompile(`^\d{1,2}x[_-]`)
)

// ErrEmptyKey is returned when normalization strips a name down to nothing.
// An empty key is a substring of everything and would corrupt matching, so it
// must never leave this package.
var ErrEmptyKey = errors.New("normalized name is empty")

// Normalize canonicalizes a CAD label or mesh file name into a matching key.
// Steps, in order: underscores become hyphens, a literal ".stl" suffix is
// dropped, a trailing revision tag and a leading quantity prefix are removed,
// and trailing digits are stripped one at a time (auto-increment suffixes,
// e.g. "Washer004" -> "Washer").
func Normalize(name string) (string, error) {
	key := strings.ReplaceAll(name, "_", "-")
	key = strings.TrimSuffix(key, ".stl")

	for _, pattern := range []*regexp.Regexp{revisionPattern, countPrefixPattern} {
		matches := pattern.FindAllString(key, -1)
		if len(matches) > 1 {
			zap.L().Warn("multiple name pattern matches",
				zap.String("name", name),
				zap.Strings("matches", matches),
			)
		}
		if len(matches) > 0 {
			key = strings.Replace(key, matches[0], "", 1)
		}
	}

	key = stripTrailingDigits(key)
	if key == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyKey, name)
	}
	return key, nil
}

// stripTrailingDigits removes trailing ASCII digits one at a time.
func stripTrailingDigits(s string) string {
	for len(s) > 0 {
		c := s[len(s)-1]
		if c < '0' || c > '9' {
			break
		}
		s = s[:len(s)-1]
	}
	return s
}
