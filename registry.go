package golocale

import (
	"context"
	"strings"

	"github.com/ZaguanLabs/golocale/cache"
	"github.com/ZaguanLabs/golocale/store"
)

// Registry resolves text keys for one active locale from an in-memory
// snapshot, loading it cache-aside from the durable store.
//
// A Registry is meant to live for one request or session: one active locale,
// one snapshot, one missing-key set. It performs no internal locking; sharing
// an instance across goroutines requires external synchronization, separate
// sessions get separate instances.
type Registry struct {
	cfg   Config
	cache cache.SnapshotCache
	store store.Store

	locale  string
	texts   map[string]string
	missing map[string]string
}

// Option is a functional option for configuring the Registry.
type Option func(*Registry)

// WithCache sets the snapshot cache backend.
func WithCache(c cache.SnapshotCache) Option {
	return func(r *Registry) {
		r.cache = c
	}
}

// WithStore sets the durable store backend.
func WithStore(s store.Store) Option {
	return func(r *Registry) {
		r.store = s
	}
}

// New creates a Registry with the given configuration.
func New(cfg Config, opts ...Option) *Registry {
	r := &Registry{
		cfg:     cfg,
		missing: make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Activate sets the active locale and builds its snapshot. Passing an
// explicit snapshot installs it directly and skips the cache-aside load
// (test and manual-override path). Reactivation replaces the previous
// snapshot wholesale and resets the missing-key set.
func (r *Registry) Activate(ctx context.Context, locale string, explicit ...map[string]string) error {
	if strings.TrimSpace(locale) == "" {
		return &InvalidInputError{Field: "locale", Message: "locale must not be empty"}
	}

	if len(explicit) > 0 && explicit[0] != nil {
		r.locale = locale
		r.texts = explicit[0]
		r.missing = make(map[string]string)
		return nil
	}

	texts, err := r.load(ctx, locale)
	if err != nil {
		return err
	}

	r.locale = locale
	r.texts = texts
	r.missing = make(map[string]string)
	return nil
}

// load builds the snapshot for a locale. Outside production, or with the
// cache disabled or absent, it always reads the durable store so lookups
// reflect live data. Otherwise it is strict cache-aside: serve a cached
// snapshot when present, else read the store and repopulate the cache.
func (r *Registry) load(ctx context.Context, locale string) (map[string]string, error) {
	if r.cache == nil || !r.cfg.Cache.Enabled || r.cfg.Environment != EnvProduction {
		return r.loadFromStore(ctx, locale)
	}

	name := r.CacheName(locale)

	// Cache read errors degrade to a store load rather than failing the call.
	if ok, err := r.cache.Has(ctx, name); err == nil && ok {
		if texts, found, err := r.cache.Get(ctx, name); err == nil && found {
			return texts, nil
		}
	}

	texts, err := r.loadFromStore(ctx, locale)
	if err != nil {
		return nil, err
	}

	// Best-effort repopulation; a failed write only costs the next hit.
	_ = r.cache.Put(ctx, name, texts, r.cfg.Cache.TTL())

	return texts, nil
}

// loadFromStore reads every row for the locale. Load-all-or-fail: a store
// error never yields a partial snapshot.
func (r *Registry) loadFromStore(ctx context.Context, locale string) (map[string]string, error) {
	if r.store == nil {
		return nil, &StoreError{Op: "fetch", Cause: errNoStore}
	}

	rows, err := r.store.FetchAll(ctx, locale)
	if err != nil {
		return nil, &StoreError{Op: "fetch", Cause: err}
	}

	texts := make(map[string]string, len(rows))
	for _, row := range rows {
		texts[row.Key] = row.Value
	}
	return texts, nil
}

// Get resolves a key against the active snapshot. Before activation it
// passes the key through unchanged. A key absent from the snapshot is
// recorded in the missing-key set and returned as its own value; missing
// text degrades to showing the raw key, never to an error.
func (r *Registry) Get(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", &InvalidInputError{Field: "key", Message: "key must not be empty"}
	}

	if r.locale == "" {
		return key, nil
	}

	if value, ok := r.texts[key]; ok {
		return value, nil
	}

	if r.missing == nil {
		r.missing = make(map[string]string)
	}
	r.missing[key] = key
	return key, nil
}

// Texts returns the active snapshot. Callers must treat it as read-only.
func (r *Registry) Texts() map[string]string {
	return r.texts
}

// Locale returns the active locale, or an empty string before activation.
func (r *Registry) Locale() string {
	return r.locale
}

// Missing returns a copy of the keys recorded as missing this session,
// each mapped to its placeholder value (the key itself).
func (r *Registry) Missing() map[string]string {
	out := make(map[string]string, len(r.missing))
	for k, v := range r.missing {
		out[k] = v
	}
	return out
}

// ClearMissing resets the missing-key set. Call after a successful flush.
func (r *Registry) ClearMissing() {
	r.missing = make(map[string]string)
}

// CacheName derives the cache entry name for a locale. The derivation is
// pure and locale-sensitive so snapshots of different locales never collide.
func (r *Registry) CacheName(locale string) string {
	table := r.cfg.DB.TextsTable
	if table == "" {
		table = "texts"
	}
	return table + "_" + locale
}
