package golocale

import (
	"context"
	"sort"
	"strings"

	"github.com/ZaguanLabs/golocale/store"
)

// Translator is the interface for suggestion backends that pre-translate
// missing keys during reconciliation.
type Translator interface {
	Translate(ctx context.Context, req TranslateRequest) ([]string, error)
}

// TranslateRequest contains the parameters for a suggestion request.
type TranslateRequest struct {
	Keys   []string // Missing keys, doubling as the source text
	Source string   // Source locale code (default: "en")
	Target Locale   // Target locale from the configured table
}

// Reconciler persists keys discovered missing during a session back into
// the durable store, once per configured locale.
type Reconciler struct {
	store      store.Store
	translator Translator
	source     string
}

// ReconcilerOption is a functional option for configuring the Reconciler.
type ReconcilerOption func(*Reconciler)

// WithSuggestions sets an optional suggestion backend. When present, inserted
// rows carry the backend's suggested value instead of the raw-key placeholder.
// Suggestion failures degrade silently back to the placeholder.
func WithSuggestions(tr Translator) ReconcilerOption {
	return func(r *Reconciler) {
		r.translator = tr
	}
}

// WithSourceLocale sets the locale the missing keys are written in.
// The source locale always receives the placeholder, never a suggestion.
func WithSourceLocale(code string) ReconcilerOption {
	return func(r *Reconciler) {
		r.source = code
	}
}

// NewReconciler creates a Reconciler writing to the given store.
func NewReconciler(st store.Store, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		store:  st,
		source: "en",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Flush persists every missing key for every configured locale, skipping
// (key, locale) pairs that already have a row. Returns false without error
// when the missing set is empty. Each check-then-insert is independent; two
// concurrent flushes can both observe "absent" and both insert, a tolerated
// race with no stronger guarantee intended.
func (r *Reconciler) Flush(ctx context.Context, missing map[string]string, locales LocaleTable) (bool, error) {
	if len(missing) == 0 {
		return false, nil
	}
	if r.store == nil {
		return false, &StoreError{Op: "insert", Cause: errNoStore}
	}

	keys := make([]string, 0, len(missing))
	for key := range missing {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, code := range locales.Codes() {
		suggestions := r.suggest(ctx, keys, locales[code])

		for i, key := range keys {
			exists, err := r.store.Exists(ctx, key, code)
			if err != nil {
				return false, &StoreError{Op: "exists", Cause: err}
			}
			if exists {
				continue
			}

			value := missing[key]
			if suggestions != nil {
				value = suggestions[i]
			}
			if err := r.store.Insert(ctx, key, code, value); err != nil {
				return false, &StoreError{Op: "insert", Cause: err}
			}
		}
	}

	return true, nil
}

// suggest asks the translator for values, or returns nil when the placeholder
// should be used: no backend, target is the source locale, a backend error,
// or a count mismatch.
func (r *Reconciler) suggest(ctx context.Context, keys []string, target Locale) []string {
	if r.translator == nil {
		return nil
	}
	if baseLang(target.Code) == baseLang(r.source) {
		return nil
	}

	results, err := r.translator.Translate(ctx, TranslateRequest{
		Keys:   keys,
		Source: r.source,
		Target: target,
	})
	if err != nil || len(results) != len(keys) {
		return nil
	}
	return results
}

// AutosaveAllowed reports whether missing-key reconciliation may run: only
// in the designated low-risk environment, with the autosave flag set, and
// with a durable store available.
func AutosaveAllowed(cfg Config, st store.Store) bool {
	return cfg.Environment == EnvLocal && cfg.DB.Autosave && st != nil
}

// baseLang extracts the base language code (e.g. "en" from "en_US").
func baseLang(code string) string {
	code = strings.ReplaceAll(code, "-", "_")
	if i := strings.Index(code, "_"); i > 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}
