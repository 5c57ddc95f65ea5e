package projectid

import "strings"

// Slugify converts an arbitrary directory name into a lowercase, hyphenated,
// URL-safe identifier. Every input produces a non-empty slug; names with no
// usable characters become "default".
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '_' || r == '-':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "default"
	}
	return slug
}
