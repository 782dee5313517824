// Package store provides durable text store implementations.
package store

import "context"

// Row is a single persisted text entry.
type Row struct {
	Key    string `json:"key"`             // Text key (e.g. "home.title")
	Value  string `json:"value"`           // Translated value; equals Key for rows awaiting translation
	Locale string `json:"locale"`          // Locale code the value belongs to
	Scope  string `json:"scope,omitempty"` // Optional grouping (e.g. a page or feature name)
}

// Store is the interface to the durable text store. Implementations own
// connection management and query execution; the resolution engine only
// drives these three operations.
type Store interface {
	// FetchAll returns every row for the given locale. An empty locale
	// returns rows for all locales (bulk export path).
	FetchAll(ctx context.Context, locale string) ([]Row, error)

	// Exists reports whether a row exists for the (key, locale) pair.
	Exists(ctx context.Context, key, locale string) (bool, error)

	// Insert persists a new row. Existing rows are never overwritten by
	// the engine; callers re-check existence before inserting.
	Insert(ctx context.Context, key, locale, value string) error
}
