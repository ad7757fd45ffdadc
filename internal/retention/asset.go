package retention

import (
	"time"
)

// DefaultPatterns lists the filenames the generation adapters produce. Files
// outside this set are invisible to cleanup and stats.
var DefaultPatterns = []string{
	"gemini-image-*.png",
	"fashion-tryOn-*.png",
	"product-image-*.png",
}

// DefaultMaxAgeHours is the standard retention window applied after a
// successful generation.
const DefaultMaxAgeHours = 24

// Asset is a persisted generated-image file inside the output directory.
type Asset struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Age reports how long ago the asset was last modified. Clock skew can make
// the raw difference negative; that is clamped to zero.
func (a Asset) Age(now time.Time) time.Duration {
	age := now.Sub(a.ModTime)
	if age < 0 {
		return 0
	}
	return age
}

// Match reports whether name matches the wildcard pattern. The only special
// character is '*', which expands to zero or more of any character; matching
// covers the full string, not a substring. This is deliberately narrower than
// path.Match: no character classes, no escaping, so patterns taken from
// configuration cannot smuggle in surprises.
func Match(pattern, name string) bool {
	return matchFrom(pattern, name)
}

func matchFrom(pattern, name string) bool {
	for len(pattern) > 0 {
		if pattern[0] == '*' {
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if pattern == "" {
				return true
			}
			for i := 0; i <= len(name); i++ {
				if matchFrom(pattern, name[i:]) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 || pattern[0] != name[0] {
			return false
		}
		pattern = pattern[1:]
		name = name[1:]
	}
	return len(name) == 0
}

// MatchAny reports whether name matches at least one pattern.
func MatchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if Match(p, name) {
			return true
		}
	}
	return false
}
