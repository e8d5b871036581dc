package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// Store persists transactions in a SQLite database.
//
// Every operation opens its own connection and closes it before
// returning. No connection state survives across calls, so a crash
// between calls never leaves a dangling handle, at the cost of a small
// per-call overhead.
type Store struct {
	path string
}

// NewStore creates a Store for the database at path, creating the
// parent directory if needed. The schema is not touched here; call
// EnsureSchema once at startup.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", core.ErrInvalidArgument)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: create db directory: %v", core.ErrStorageUnavailable, err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", core.ErrStorageUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", core.ErrStorageUnavailable, err)
	}
	return db, nil
}

// EnsureSchema creates the transactions table if absent. Safe to call
// repeatedly: a second run applies nothing and never alters existing
// rows.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := RunMigrations(s.path); err != nil {
		return fmt.Errorf("%w: run migrations: %v", core.ErrStorageUnavailable, err)
	}
	slog.DebugContext(ctx, "Schema ensured", "path", s.path)
	return nil
}

// Append durably records one transaction and returns its id. The
// timestamp is the store's local wall clock at second resolution,
// assigned here, never by the caller. The insert is committed before
// Append returns.
func (s *Store) Append(ctx context.Context, kind core.Kind, amount float64, category string) (int64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	db, err := s.open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx,
		`INSERT INTO transactions (kind, amount, category, date) VALUES (?, ?, ?, ?)`,
		string(kind), amount, category, time.Now().Format(core.DateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: insert transaction: %v", core.ErrStorageUnavailable, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", core.ErrStorageUnavailable, err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"kind", string(kind),
		"amount", amount,
		"category", category)

	return id, nil
}

// SumByKind returns the sum of amounts over all records of the given
// kind. Aggregation is done by the database, not row by row here, and
// an empty ledger sums to exactly zero rather than an error.
func (s *Store) SumByKind(ctx context.Context, kind core.Kind) (float64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	db, err := s.open(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var total float64
	err = db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE kind = ?`,
		string(kind),
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: sum by kind: %v", core.ErrStorageUnavailable, err)
	}

	return total, nil
}

// List returns up to limit transactions, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]core.Transaction, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, kind, amount, category, date FROM transactions ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions: %v", core.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			tx       core.Transaction
			kind     string
			category sql.NullString
			date     string
		)
		if err := rows.Scan(&tx.ID, &kind, &tx.Amount, &category, &date); err != nil {
			return nil, fmt.Errorf("%w: scan transaction: %v", core.ErrStorageUnavailable, err)
		}
		tx.Kind = core.Kind(kind)
		tx.Category = category.String
		if tx.Date, err = time.ParseInLocation(core.DateLayout, date, time.Local); err != nil {
			return nil, fmt.Errorf("%w: parse transaction date %q: %v", core.ErrStorageUnavailable, date, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate transactions: %v", core.ErrStorageUnavailable, err)
	}

	return txs, nil
}
