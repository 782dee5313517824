package store

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// BunStore persists text rows using a Bun-backed database.
type BunStore struct {
	db    *bun.DB
	table string
}

// NewBunStore constructs a Bun-backed store reading and writing the given
// table. An empty table name falls back to "texts".
func NewBunStore(db *bun.DB, table string) *BunStore {
	if table == "" {
		table = "texts"
	}
	return &BunStore{db: db, table: table}
}

// CreateTable creates the texts table if it does not exist yet.
func (s *BunStore) CreateTable(ctx context.Context) error {
	if s.db == nil {
		return errors.New("store: bun store requires a database")
	}
	_, err := s.db.NewCreateTable().
		Model((*textRow)(nil)).
		ModelTableExpr("?", bun.Ident(s.table)).
		IfNotExists().
		Exec(ctx)
	return err
}

// FetchAll returns rows for one locale, or all locales when locale is empty.
func (s *BunStore) FetchAll(ctx context.Context, locale string) ([]Row, error) {
	if s.db == nil {
		return nil, errors.New("store: bun store requires a database")
	}

	var models []textRow
	q := s.db.NewSelect().
		Model(&models).
		ModelTableExpr("? AS t", bun.Ident(s.table)).
		OrderExpr("t.locale ASC, t.key ASC")
	if locale != "" {
		q = q.Where("t.locale = ?", locale)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	rows := make([]Row, len(models))
	for i, m := range models {
		rows[i] = Row{Key: m.Key, Value: m.Value, Locale: m.Locale, Scope: m.Scope}
	}
	return rows, nil
}

// Exists reports whether a row exists for the (key, locale) pair.
func (s *BunStore) Exists(ctx context.Context, key, locale string) (bool, error) {
	if s.db == nil {
		return false, errors.New("store: bun store requires a database")
	}
	return s.db.NewSelect().
		Model((*textRow)(nil)).
		ModelTableExpr("? AS t", bun.Ident(s.table)).
		Where("t.key = ?", key).
		Where("t.locale = ?", locale).
		Exists(ctx)
}

// Insert persists a new row.
func (s *BunStore) Insert(ctx context.Context, key, locale, value string) error {
	if s.db == nil {
		return errors.New("store: bun store requires a database")
	}
	model := textRow{
		Key:       key,
		Value:     value,
		Locale:    locale,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(&model).
		ModelTableExpr("?", bun.Ident(s.table)).
		Exec(ctx)
	return err
}

type textRow struct {
	bun.BaseModel `bun:"table:texts,alias:t"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Key       string    `bun:"key,notnull"`
	Value     string    `bun:"value,notnull"`
	Locale    string    `bun:"locale,notnull"`
	Scope     string    `bun:"scope"`
	CreatedAt time.Time `bun:"created_at,nullzero"`
}

// Verify BunStore implements Store
var _ Store = (*BunStore)(nil)
