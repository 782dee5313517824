package golocale

import "sort"

// Locale describes one entry of the configured locale table.
type Locale struct {
	Code      string // Short identifier used in paths and storage (e.g. "en")
	Canonical string // Optional canonical locale the code resolves to (e.g. "en_US")
	Display   string // Human-readable name (e.g. "English")
	IsDefault bool   // Marks the fallback locale
}

// LocaleTable is the read-only set of valid locales, keyed by code.
// The registry never invents or removes entries.
type LocaleTable map[string]Locale

// Default returns the code of the locale flagged as the fallback,
// or an empty string when no entry carries the flag.
func (t LocaleTable) Default() string {
	for code, loc := range t {
		if loc.IsDefault {
			return code
		}
	}
	return ""
}

// Resolve looks up a locale by code.
func (t LocaleTable) Resolve(code string) (Locale, bool) {
	loc, ok := t[code]
	return loc, ok
}

// Codes returns the locale codes in sorted order.
func (t LocaleTable) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LocaleName returns the display name configured for a locale code.
// Falls back to the code itself if the table has no entry or no name.
func (t LocaleTable) LocaleName(code string) string {
	if loc, ok := t[code]; ok && loc.Display != "" {
		return loc.Display
	}
	return code
}
