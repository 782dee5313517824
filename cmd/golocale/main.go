// Command golocale resolves locale texts from a durable store with a cache in front.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ZaguanLabs/golocale"
	"github.com/ZaguanLabs/golocale/cache"
	"github.com/ZaguanLabs/golocale/provider"
	"github.com/ZaguanLabs/golocale/store"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = golocale.Version
	commit    = golocale.GitCommit
	buildDate = golocale.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("golocale", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	localeFlag := fs.String("locale", "", "Locale to activate (e.g., en, fr)")
	envName := fs.String("env", "", "Runtime environment: production or local (default: GOLOCALE_ENV)")
	dbDSN := fs.String("db", "", "SQLite DSN for the texts store (default: GOLOCALE_DB_CONNECTION)")
	table := fs.String("table", "", "Texts table name (default: GOLOCALE_DB_TEXTS_TABLE)")
	cacheStore := fs.String("cache", "", "Cache backend: memory, ristretto, redis, off (default: GOLOCALE_CACHE_STORE)")
	redisURL := fs.String("redis", "redis://localhost:6379/0", "Redis URL for -cache redis")
	cacheTTL := fs.Int("cache-ttl", 0, "Cache lifetime in minutes (default: GOLOCALE_CACHE_LIFETIME)")
	localesFlag := fs.String("locales", "en:English", "Comma-separated locale entries (code[:display])")
	defaultLocale := fs.String("default", "en", "Default locale code")
	exportMode := fs.Bool("export", false, "Export stored rows (all locales, or -locale)")
	importFile := fs.String("import", "", "Import rows from a JSON export file, skipping existing ones")
	flushMode := fs.Bool("flush", false, "Persist missing keys (from args or stdin) for every locale")
	suggest := fs.Bool("suggest", false, "Fill flushed rows with AI suggestions instead of placeholders")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	rpm := fs.Int("rpm", 60, "Suggestion requests per minute")
	showVersion := fs.Bool("version", false, "Show version")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	quiet := fs.Bool("quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", golocale.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Environment config first, flags override
	cfg, err := golocale.FromEnv()
	if err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if *envName != "" {
		cfg.Environment = *envName
	}
	if *dbDSN != "" {
		cfg.DB.Connection = *dbDSN
	}
	if *table != "" {
		cfg.DB.TextsTable = *table
	}
	if *cacheStore != "" {
		cfg.Cache.Store = *cacheStore
		cfg.Cache.Enabled = *cacheStore != "off"
	}
	if *cacheTTL > 0 {
		cfg.Cache.Lifetime = *cacheTTL
	}
	if *flushMode {
		// An explicit -flush is the operator asking for autosave; the
		// environment gate still applies.
		cfg.DB.Autosave = true
	}

	if cfg.DB.Connection == "" {
		fs.Usage()
		return fmt.Errorf("-db is required (or GOLOCALE_DB_CONNECTION)")
	}

	locales, err := parseLocales(*localesFlag, *defaultLocale)
	if err != nil {
		return err
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()

	if *exportMode {
		return runExport(ctx, st, *localeFlag, stdout, *jsonOutput)
	}

	if *importFile != "" {
		return runImport(ctx, st, *importFile, stdout, stderr, *jsonOutput, *quiet)
	}

	if *flushMode {
		var tr golocale.Translator
		if *suggest {
			key := *apiKey
			if key == "" {
				key = os.Getenv("OPENAI_API_KEY")
			}
			if key == "" {
				return fmt.Errorf("OpenAI API key required (-api-key or OPENAI_API_KEY env)")
			}
			p := provider.NewOpenAIProvider(provider.OpenAIConfig{
				APIKey: key,
				Model:  *model,
			})
			retryable := golocale.NewRetryableTranslator(p, golocale.DefaultRetryConfig())
			tr = golocale.NewRateLimitedTranslator(retryable, golocale.RateLimitConfig{
				RequestsPerMinute: *rpm,
			})
		}
		return runFlush(ctx, cfg, st, locales, *defaultLocale, tr, fs.Args(), stdin, stdout, stderr, *jsonOutput, *quiet)
	}

	// Resolve mode
	if *localeFlag == "" {
		fs.Usage()
		return fmt.Errorf("-locale is required")
	}

	c, err := openCache(cfg, *redisURL)
	if err != nil {
		return err
	}

	opts := []golocale.Option{golocale.WithStore(st)}
	if c != nil {
		opts = append(opts, golocale.WithCache(c))
	}
	reg := golocale.New(cfg, opts...)

	if err := reg.Activate(ctx, *localeFlag); err != nil {
		return fmt.Errorf("activating %q: %w", *localeFlag, err)
	}

	resolved := map[string]string{}
	if fs.NArg() == 0 {
		resolved = reg.Texts()
	} else {
		for _, key := range fs.Args() {
			value, err := reg.Get(key)
			if err != nil {
				return err
			}
			resolved[key] = value
		}
	}

	if *jsonOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resolved); err != nil {
			return err
		}
	} else {
		for _, key := range sortedKeys(resolved) {
			fmt.Fprintf(stdout, "%s = %s\n", key, resolved[key])
		}
	}

	if missing := reg.Missing(); len(missing) > 0 && !*quiet {
		fmt.Fprintf(stderr, "%d key(s) had no %s text\n", len(missing), reg.Locale())
	}

	return nil
}

// openStore opens the SQLite-backed texts store, creating the table on
// first use.
func openStore(cfg golocale.Config) (*store.BunStore, func() error, error) {
	sqldb, err := sql.Open("sqlite3", cfg.DB.Connection)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())

	st := store.NewBunStore(db, cfg.DB.TextsTable)
	if err := st.CreateTable(context.Background()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("preparing texts table: %w", err)
	}
	return st, db.Close, nil
}

// openCache builds the configured cache backend, or nil when caching is off.
func openCache(cfg golocale.Config, redisURL string) (cache.SnapshotCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch strings.ToLower(cfg.Cache.Store) {
	case "", "off", "none":
		return nil, nil
	case "memory":
		return cache.NewMemoryCache(), nil
	case "ristretto":
		return cache.NewRistrettoCache(1024)
	case "redis":
		c, err := cache.NewRedisCache(cache.RedisConfig{URL: redisURL})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Store)
	}
}

// parseLocales builds the locale table from "code[:display]" entries.
func parseLocales(list, defaultCode string) (golocale.LocaleTable, error) {
	table := golocale.LocaleTable{}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, display, _ := strings.Cut(entry, ":")
		if code == "" {
			return nil, fmt.Errorf("invalid locale entry %q", entry)
		}
		table[code] = golocale.Locale{
			Code:      code,
			Display:   display,
			IsDefault: code == defaultCode,
		}
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("at least one locale is required")
	}
	if _, ok := table[defaultCode]; !ok {
		return nil, fmt.Errorf("default locale %q is not in -locales", defaultCode)
	}
	return table, nil
}

// runExport dumps stored rows, for one locale or all of them.
func runExport(ctx context.Context, st *store.BunStore, locale string, stdout io.Writer, jsonOut bool) error {
	if jsonOut {
		return store.NewExporter(st).Export(ctx, stdout, locale, nil)
	}

	rows, err := st.FetchAll(ctx, locale)
	if err != nil {
		return fmt.Errorf("exporting texts: %w", err)
	}
	for _, row := range rows {
		fmt.Fprintf(stdout, "%s\t%s = %s\n", row.Locale, row.Key, row.Value)
	}
	return nil
}

// runImport loads rows from a JSON export file into the store.
func runImport(ctx context.Context, st *store.BunStore, path string, stdout, stderr io.Writer, jsonOut, quiet bool) error {
	result, err := store.NewImporter(st).ImportFromFile(ctx, path)
	if err != nil {
		return fmt.Errorf("importing texts: %w", err)
	}

	if jsonOut {
		out := struct {
			Imported int `json:"imported"`
			Skipped  int `json:"skipped"`
			Failed   int `json:"failed"`
		}{result.Imported, result.Skipped, result.Failed}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !quiet {
		fmt.Fprintf(stderr, "Imported %d row(s), skipped %d, failed %d\n",
			result.Imported, result.Skipped, result.Failed)
	}
	return nil
}

// runFlush persists missing keys for every configured locale. Keys come
// from the remaining arguments, or one per line on stdin when none are given.
func runFlush(ctx context.Context, cfg golocale.Config, st *store.BunStore, locales golocale.LocaleTable, source string, tr golocale.Translator, args []string, stdin io.Reader, stdout, stderr io.Writer, jsonOut, quiet bool) error {
	if !golocale.AutosaveAllowed(cfg, st) {
		return fmt.Errorf("flush requires -env %s", golocale.EnvLocal)
	}

	keys := args
	if len(keys) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				keys = append(keys, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading keys: %w", err)
		}
	}

	missing := make(map[string]string, len(keys))
	for _, key := range keys {
		missing[key] = key
	}

	opts := []golocale.ReconcilerOption{golocale.WithSourceLocale(source)}
	if tr != nil {
		opts = append(opts, golocale.WithSuggestions(tr))
	}
	rec := golocale.NewReconciler(st, opts...)

	flushed, err := rec.Flush(ctx, missing, locales)
	if err != nil {
		return fmt.Errorf("flushing missing keys: %w", err)
	}

	if jsonOut {
		out := struct {
			Flushed bool     `json:"flushed"`
			Keys    []string `json:"keys"`
			Locales []string `json:"locales"`
		}{
			Flushed: flushed,
			Keys:    keys,
			Locales: locales.Codes(),
		}
		sort.Strings(out.Keys)
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !quiet {
		if flushed {
			fmt.Fprintf(stderr, "Flushed %d key(s) across %d locale(s)\n", len(missing), len(locales))
		} else {
			fmt.Fprintln(stderr, "Nothing to flush")
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
