package golocale

import (
	"reflect"
	"testing"
)

var detectLocales = LocaleTable{
	"en": {Code: "en", Display: "English", IsDefault: true},
	"fr": {Code: "fr", Display: "French"},
	"pt": {Code: "pt", Canonical: "pt_BR", Display: "Portuguese"},
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{"valid locale", []string{"fr", "page"}, "fr"},
		{"canonical override", []string{"pt", "page"}, "pt_BR"},
		{"unknown segment", []string{"xx", "page"}, "en"},
		{"non-locale segment", []string{"page"}, "en"},
		{"empty path", nil, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.segments, detectLocales, "en")
			if got != tt.expected {
				t.Errorf("Detect(%v) = %q, want %q", tt.segments, got, tt.expected)
			}
		})
	}
}

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		query    string
		target   string
		redirect bool
	}{
		{"valid locale", []string{"en", "page"}, "", "", false},
		{"valid canonical locale", []string{"pt", "page"}, "", "", false},
		{"invalid 2-char locale", []string{"xx", "page"}, "", "/en/page", true},
		{"invalid 2-char locale alone", []string{"xx"}, "", "/en", true},
		{"non-locale first segment", []string{"page"}, "", "/en/page", true},
		{"longer first segment", []string{"products", "list"}, "", "/en/products/list", true},
		{"single char segment", []string{"p"}, "", "/en/p", true},
		{"empty path", nil, "", "/en", true},
		{"query preserved on rewrite", []string{"xx", "page"}, "sort=asc", "/en/page?sort=asc", true},
		{"query preserved on prepend", []string{"page"}, "id=5", "/en/page?id=5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, redirect := RedirectTarget(tt.segments, tt.query, detectLocales, "en")
			if redirect != tt.redirect {
				t.Fatalf("RedirectTarget(%v) redirect = %v, want %v", tt.segments, redirect, tt.redirect)
			}
			if target != tt.target {
				t.Errorf("RedirectTarget(%v) = %q, want %q", tt.segments, target, tt.target)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path     string
		expected []string
	}{
		{"/en/page", []string{"en", "page"}},
		{"/page/", []string{"page"}},
		{"//double//slashes", []string{"double", "slashes"}},
		{"/", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := SplitPath(tt.path); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("SplitPath(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestLocaleTable_Default(t *testing.T) {
	if got := detectLocales.Default(); got != "en" {
		t.Errorf("Default() = %q, want %q", got, "en")
	}

	noDefault := LocaleTable{"fr": {Code: "fr"}}
	if got := noDefault.Default(); got != "" {
		t.Errorf("Default() without flagged locale = %q, want empty", got)
	}
}

func TestLocaleTable_Codes(t *testing.T) {
	got := detectLocales.Codes()
	want := []string{"en", "fr", "pt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestLocaleTable_LocaleName(t *testing.T) {
	if got := detectLocales.LocaleName("fr"); got != "French" {
		t.Errorf("LocaleName(fr) = %q, want %q", got, "French")
	}
	if got := detectLocales.LocaleName("xx"); got != "xx" {
		t.Errorf("LocaleName(xx) = %q, want code fallback", got)
	}
}
