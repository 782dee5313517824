package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ExportFormat represents the JSON structure for text export/import.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Rows       []Row             `json:"rows"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Exporter provides text export functionality.
type Exporter struct {
	store Store
}

// NewExporter creates a new text exporter.
func NewExporter(st Store) *Exporter {
	return &Exporter{store: st}
}

// Export writes every row for the given locale (all locales when empty)
// to a writer in JSON format.
func (e *Exporter) Export(ctx context.Context, w io.Writer, locale string, metadata map[string]string) error {
	rows, err := e.store.FetchAll(ctx, locale)
	if err != nil {
		return fmt.Errorf("fetching rows: %w", err)
	}

	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:       rows,
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// ExportToFile exports the texts to a file.
// The path is provided by the caller and is intentionally user-controlled.
func (e *Exporter) ExportToFile(ctx context.Context, path, locale string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return e.Export(ctx, f, locale, metadata)
}

// Importer provides text import functionality.
type Importer struct {
	store Store
}

// NewImporter creates a new text importer.
func NewImporter(st Store) *Importer {
	return &Importer{store: st}
}

// Import reads rows from a reader and inserts them into the store.
// Existing (key, locale) rows are skipped, never overwritten.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{
		Version:  export.Version,
		Metadata: export.Metadata,
	}

	for _, row := range export.Rows {
		exists, err := i.store.Exists(ctx, row.Key, row.Locale)
		if err != nil {
			return result, fmt.Errorf("checking row %q/%q: %w", row.Key, row.Locale, err)
		}
		if exists {
			result.Skipped++
			continue
		}
		if err := i.store.Insert(ctx, row.Key, row.Locale, row.Value); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ImportFromFile imports rows from a file.
// The path is provided by the caller and is intentionally user-controlled.
func (i *Importer) ImportFromFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return i.Import(ctx, f)
}

// ImportResult contains statistics about the import operation.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Skipped  int
	Failed   int
}
