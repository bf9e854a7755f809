// Package store persists processed receipts and their repaired item records
// to a local SQLite database for downstream mapping and SQL-generation
// collaborators.
package store

import (
	"context"
	"database/sql"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/kaiyo-foods/receiptlines/internal/common"
	"github.com/kaiyo-foods/receiptlines/internal/pipeline"
)

const schema = `
CREATE TABLE IF NOT EXISTS receipts (
	id            TEXT PRIMARY KEY,
	vendor        TEXT NOT NULL,
	source        TEXT NOT NULL DEFAULT '',
	cleaned_lines INTEGER NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS receipt_items (
	id             TEXT PRIMARY KEY,
	receipt_id     TEXT NOT NULL REFERENCES receipts(id),
	position       INTEGER NOT NULL,
	upc            TEXT NOT NULL DEFAULT '',
	item_number    TEXT NOT NULL DEFAULT '',
	display_name   TEXT NOT NULL DEFAULT '',
	canonical_name TEXT NOT NULL DEFAULT '',
	product_name   TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	size           TEXT NOT NULL DEFAULT '',
	uom            TEXT NOT NULL DEFAULT '',
	quantity       REAL NOT NULL DEFAULT 0,
	unit_price     REAL NOT NULL DEFAULT 0,
	total_price    REAL NOT NULL DEFAULT 0,
	raw_line       TEXT NOT NULL DEFAULT '',
	is_fee         INTEGER NOT NULL DEFAULT 0,
	is_summary     INTEGER NOT NULL DEFAULT 0
);
`

// Store is a thin SQLite sink; it has no query surface beyond the counts
// the CLI summary needs.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.NewAppError("STORE_OPEN", "open sqlite database "+path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, common.NewAppError("STORE_MIGRATE", "apply schema", err)
	}
	logger.Info("store.open", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult writes one receipt and its items in a single transaction.
func (s *Store) SaveResult(ctx context.Context, source string, res pipeline.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapError(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO receipts (id, vendor, source, cleaned_lines) VALUES (?, ?, ?, ?)`,
		res.ReceiptID.String(), string(res.Vendor), source, len(res.CleanedLines),
	); err != nil {
		return common.WrapError(err, "insert receipt")
	}

	for i, it := range res.Items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO receipt_items (
				id, receipt_id, position, upc, item_number,
				display_name, canonical_name, product_name, description,
				size, uom, quantity, unit_price, total_price,
				raw_line, is_fee, is_summary
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID.String(), res.ReceiptID.String(), i, it.UPC, it.ItemNumber,
			it.DisplayName, it.CanonicalName, it.ProductName, it.Description,
			it.Size, it.UOM, it.Quantity, it.UnitPrice, it.TotalPrice,
			it.RawLine, it.IsFee, it.IsSummary,
		); err != nil {
			return common.WrapError(err, "insert item")
		}
	}

	if err := tx.Commit(); err != nil {
		return common.WrapError(err, "commit")
	}
	s.logger.Debug("store.save", "receipt_id", res.ReceiptID, "items", len(res.Items))
	return nil
}

// CountItems returns the number of stored item records.
func (s *Store) CountItems(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM receipt_items`).Scan(&n); err != nil {
		return 0, common.WrapError(err, "count items")
	}
	return n, nil
}
