// Package sqlite persists the snapshot in a SQLite database. A save
// rewrites the three tables inside one transaction, mirroring the
// overwrite-the-document semantics of the JSON backend.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/milkledger/server/internal/model"
)

var _ model.SnapshotStore = (*Store)(nil)

// Store persists snapshots through a database handle.
type Store struct {
	db *sql.DB
}

// New wraps an existing database handle. The schema must already exist.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the database at dbPath, creating the file and schema if
// needed.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS couriers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id TEXT PRIMARY KEY,
		courier_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		quantity REAL NOT NULL,
		unit_price REAL NOT NULL,
		recorded_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deposits (
		id TEXT PRIMARY KEY,
		courier_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		amount REAL NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the three tables into a snapshot.
func (s *Store) Load(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM couriers`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query couriers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c model.Courier
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to scan courier: %w", err)
		}
		snap.Couriers = append(snap.Couriers, c)
	}
	if err := rows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read couriers: %w", err)
	}

	deliveryRows, err := s.db.QueryContext(ctx,
		`SELECT id, courier_id, year, month, day, quantity, unit_price, recorded_at FROM deliveries`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer deliveryRows.Close()
	for deliveryRows.Next() {
		var d model.Delivery
		if err := deliveryRows.Scan(&d.ID, &d.CourierID, &d.Year, &d.Month, &d.Day, &d.Quantity, &d.UnitPrice, &d.RecordedAt); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to scan delivery: %w", err)
		}
		snap.Deliveries = append(snap.Deliveries, d)
	}
	if err := deliveryRows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read deliveries: %w", err)
	}

	depositRows, err := s.db.QueryContext(ctx,
		`SELECT id, courier_id, year, month, day, amount, description, created_at FROM deposits`)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to query deposits: %w", err)
	}
	defer depositRows.Close()
	for depositRows.Next() {
		var d model.Deposit
		if err := depositRows.Scan(&d.ID, &d.CourierID, &d.Year, &d.Month, &d.Day, &d.Amount, &d.Description, &d.CreatedAt); err != nil {
			return model.Snapshot{}, fmt.Errorf("failed to scan deposit: %w", err)
		}
		snap.Deposits = append(snap.Deposits, d)
	}
	if err := depositRows.Err(); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read deposits: %w", err)
	}

	return snap, nil
}

// Save replaces the table contents with the snapshot in one transaction.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"couriers", "deliveries", "deposits"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, c := range snap.Couriers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO couriers (id, name, created_at) VALUES (?, ?, ?)`,
			c.ID, c.Name, c.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert courier: %w", err)
		}
	}
	for _, d := range snap.Deliveries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO deliveries (id, courier_id, year, month, day, quantity, unit_price, recorded_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.CourierID, d.Year, d.Month, d.Day, d.Quantity, d.UnitPrice, d.RecordedAt); err != nil {
			return fmt.Errorf("failed to insert delivery: %w", err)
		}
	}
	for _, d := range snap.Deposits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO deposits (id, courier_id, year, month, day, amount, description, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.CourierID, d.Year, d.Month, d.Day, d.Amount, d.Description, d.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert deposit: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}
