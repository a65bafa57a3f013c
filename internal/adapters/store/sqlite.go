package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// catalogDocument is the documents row holding the recipe tree.
const catalogDocument = "catalog"

var _ ports.Store = (*SQLiteStore)(nil)

// SQLiteStore implements ports.Store on a SQLite database. The recipe tree is kept as one JSON
// document; prices are one row per ingredient.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens or creates the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}
	// One connection keeps writes serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", path)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// LoadCatalog reads the recipe tree. An empty database yields an empty tree.
func (s *SQLiteStore) LoadCatalog(ctx context.Context) (*domain.Folder, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, catalogDocument).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewFolder(), nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	root := domain.NewFolder()
	if err := json.Unmarshal([]byte(body), root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}
	return root, nil
}

// SaveCatalog replaces the stored recipe tree.
func (s *SQLiteStore) SaveCatalog(ctx context.Context, root *domain.Folder) error {
	body, err := json.Marshal(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "path", s.path)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (name, body)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body = excluded.body`,
		catalogDocument, string(body))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// LoadPrices reads the price book.
func (s *SQLiteStore) LoadPrices(ctx context.Context) (domain.PriceBook, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, price, measurement FROM prices ORDER BY name`)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}
	defer func() { _ = rows.Close() }()

	prices := make(domain.PriceBook)
	for rows.Next() {
		var (
			name string
			p    domain.Price
		)
		if err := rows.Scan(&name, &p.Price, &p.Measurement); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
		}
		prices[name] = p
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}
	return prices, nil
}

// SavePrices replaces the stored price book in a single transaction.
func (s *SQLiteStore) SavePrices(ctx context.Context, prices domain.PriceBook) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM prices`); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	for name, p := range prices {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO prices (name, price, measurement) VALUES (?, ?, ?)`,
			name, p.Price, p.Measurement)
		if err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path), "ingredient", name)
		}
	}

	if err = tx.Commit(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
