package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempDSN(t *testing.T) string {
	t.Helper()
	return "file:" + filepath.Join(t.TempDir(), "texts.db") + "?_fk=1"
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-version"}, strings.NewReader(""), &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "golocale") {
		t.Errorf("expected version output, got: %s", stdout.String())
	}
}

func TestRun_MissingDB(t *testing.T) {
	t.Setenv("GOLOCALE_DB_CONNECTION", "")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-locale", "en"}, strings.NewReader(""), &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing -db")
	}

	if !strings.Contains(err.Error(), "-db is required") {
		t.Errorf("expected '-db is required' error, got: %v", err)
	}
}

func TestRun_MissingLocale(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-db", tempDSN(t)}, strings.NewReader(""), &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing -locale")
	}

	if !strings.Contains(err.Error(), "-locale is required") {
		t.Errorf("expected '-locale is required' error, got: %v", err)
	}
}

func TestRun_FlushRequiresLocalEnv(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(
		[]string{"-db", tempDSN(t), "-env", "production", "-flush", "nav.cart"},
		strings.NewReader(""), &stdout, &stderr,
	)

	if err == nil {
		t.Fatal("expected error flushing outside the local environment")
	}

	if !strings.Contains(err.Error(), "flush requires") {
		t.Errorf("expected environment gate error, got: %v", err)
	}
}

func TestRun_FlushExportResolve(t *testing.T) {
	dsn := tempDSN(t)

	// Flush two keys for en and fr
	var stdout, stderr bytes.Buffer
	err := run(
		[]string{
			"-db", dsn, "-env", "local", "-quiet",
			"-locales", "en:English,fr:French", "-flush",
			"nav.cart", "nav.checkout",
		},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	// Export should show both locales with placeholder values
	stdout.Reset()
	err = run(
		[]string{"-db", dsn, "-export", "-json"},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var exported struct {
		Version string `json:"version"`
		Rows    []struct {
			Key    string `json:"key"`
			Value  string `json:"value"`
			Locale string `json:"locale"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &exported); err != nil {
		t.Fatalf("failed to parse export JSON: %v", err)
	}
	if len(exported.Rows) != 4 {
		t.Fatalf("expected 4 rows in export (2 keys x 2 locales), got %d", len(exported.Rows))
	}
	frCart := ""
	for _, row := range exported.Rows {
		if row.Locale == "fr" && row.Key == "nav.cart" {
			frCart = row.Value
		}
	}
	if frCart != "nav.cart" {
		t.Errorf("fr nav.cart = %q, want placeholder", frCart)
	}

	// Resolving against the flushed table returns the placeholder rows
	stdout.Reset()
	err = run(
		[]string{"-db", dsn, "-locale", "fr", "-json", "-quiet", "nav.cart"},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	var resolved map[string]string
	if err := json.Unmarshal(stdout.Bytes(), &resolved); err != nil {
		t.Fatalf("failed to parse resolve JSON: %v", err)
	}
	if resolved["nav.cart"] != "nav.cart" {
		t.Errorf("resolved nav.cart = %q, want placeholder", resolved["nav.cart"])
	}
}

func TestRun_FlushKeysFromStdin(t *testing.T) {
	dsn := tempDSN(t)

	var stdout, stderr bytes.Buffer
	err := run(
		[]string{"-db", dsn, "-env", "local", "-flush", "-json"},
		strings.NewReader("nav.cart\n\nnav.checkout\n"), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("flush from stdin failed: %v", err)
	}

	var out struct {
		Flushed bool     `json:"flushed"`
		Keys    []string `json:"keys"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("failed to parse flush JSON: %v", err)
	}
	if !out.Flushed {
		t.Error("expected flushed=true")
	}
	if len(out.Keys) != 2 {
		t.Errorf("expected 2 keys from stdin, got %v", out.Keys)
	}
}

func TestRun_ImportRoundTrip(t *testing.T) {
	srcDSN := tempDSN(t)
	dstDSN := tempDSN(t)

	// Seed the source via flush, then export it to a file
	var stdout, stderr bytes.Buffer
	err := run(
		[]string{"-db", srcDSN, "-env", "local", "-quiet", "-flush", "nav.cart"},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	stdout.Reset()
	err = run(
		[]string{"-db", srcDSN, "-export", "-json"},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	exportFile := filepath.Join(t.TempDir(), "texts.json")
	if err := os.WriteFile(exportFile, stdout.Bytes(), 0o600); err != nil {
		t.Fatalf("writing export file: %v", err)
	}

	// Import into a fresh database
	stdout.Reset()
	err = run(
		[]string{"-db", dstDSN, "-import", exportFile, "-json"},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	var result struct {
		Imported int `json:"imported"`
		Skipped  int `json:"skipped"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse import JSON: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("Imported = %d, want 1", result.Imported)
	}

	// A second import skips everything
	stdout.Reset()
	err = run(
		[]string{"-db", dstDSN, "-import", exportFile, "-json"},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse import JSON: %v", err)
	}
	if result.Imported != 0 || result.Skipped != 1 {
		t.Errorf("second import = %d imported / %d skipped, want 0/1", result.Imported, result.Skipped)
	}
}

func TestRun_ResolveMissingKeyPassthrough(t *testing.T) {
	dsn := tempDSN(t)

	var stdout, stderr bytes.Buffer
	err := run(
		[]string{"-db", dsn, "-locale", "en", "-json", "unknown.key"},
		strings.NewReader(""), &stdout, &stderr,
	)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	var resolved map[string]string
	if err := json.Unmarshal(stdout.Bytes(), &resolved); err != nil {
		t.Fatalf("failed to parse JSON: %v", err)
	}
	if resolved["unknown.key"] != "unknown.key" {
		t.Errorf("resolved unknown.key = %q, want passthrough", resolved["unknown.key"])
	}

	if !strings.Contains(stderr.String(), "1 key(s)") {
		t.Errorf("expected missing-key note on stderr, got: %s", stderr.String())
	}
}

func TestParseLocales(t *testing.T) {
	table, err := parseLocales("en:English, fr:French ,pt", "en")
	if err != nil {
		t.Fatalf("parseLocales failed: %v", err)
	}

	if len(table) != 3 {
		t.Fatalf("expected 3 locales, got %d", len(table))
	}
	if table["fr"].Display != "French" {
		t.Errorf("fr display = %q, want %q", table["fr"].Display, "French")
	}
	if table["pt"].Display != "" {
		t.Errorf("pt display = %q, want empty", table["pt"].Display)
	}
	if !table["en"].IsDefault {
		t.Error("en should be the default locale")
	}
	if table["fr"].IsDefault {
		t.Error("fr should not be the default locale")
	}
}

func TestParseLocales_DefaultNotListed(t *testing.T) {
	_, err := parseLocales("fr:French", "en")
	if err == nil {
		t.Fatal("expected error when default locale is missing from the table")
	}
}
