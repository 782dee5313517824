package golocale

import "strings"

// Detect derives the active locale from the leading path segment. A segment
// matching the locale table resolves to its canonical locale (or the segment
// itself without an override); anything else falls back to defaultLocale.
// Detect is total: it always returns a usable locale.
func Detect(segments []string, table LocaleTable, defaultLocale string) string {
	if len(segments) == 0 {
		return defaultLocale
	}
	if loc, ok := table[segments[0]]; ok {
		if loc.Canonical != "" {
			return loc.Canonical
		}
		return segments[0]
	}
	return defaultLocale
}

// RedirectTarget computes the corrected path for requests whose leading
// segment is not a valid locale. A 2-character segment missing from the
// table is rewritten to defaultLocale; any other leading segment keeps its
// place and defaultLocale is prepended. A valid locale segment needs no
// redirect.
func RedirectTarget(segments []string, query string, table LocaleTable, defaultLocale string) (string, bool) {
	var first string
	if len(segments) > 0 {
		first = segments[0]
	}

	if len(first) == 2 {
		if _, ok := table[first]; ok {
			return "", false
		}
		rewritten := append([]string{defaultLocale}, segments[1:]...)
		return buildPath(rewritten, query), true
	}

	prefixed := append([]string{defaultLocale}, segments...)
	return buildPath(prefixed, query), true
}

// SplitPath splits a URL path into its non-empty segments.
func SplitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

func buildPath(segments []string, query string) string {
	path := "/" + strings.Join(segments, "/")
	if query != "" {
		path += "?" + query
	}
	return path
}
