package metrics

import "strings"

// FlattenName maps name onto the Prometheus metric name charset, replacing
// every other rune with an underscore.
func FlattenName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		default:
			return '_'
		}
	}, name)
}

// BuildFQName joins the non empty names with underscores and flattens the result.
func BuildFQName(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			parts = append(parts, name)
		}
	}
	return FlattenName(strings.Join(parts, "_"))
}
