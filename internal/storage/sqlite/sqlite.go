// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/rsvp/internal/models"
	"github.com/mmynk/rsvp/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under concurrent posts.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateResponse persists a response and its guests in one transaction.
func (s *SQLiteStore) CreateResponse(ctx context.Context, resp *models.Response) error {
	if resp.ID == "" {
		resp.ID = uuid.New().String()
	}
	if resp.ReceivedAt == 0 {
		resp.ReceivedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO responses (id, received_at) VALUES (?, ?)",
		resp.ID, resp.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}

	for i, g := range resp.Guests {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO guests (response_id, position, first_name, last_name, age_category, menu)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			resp.ID, i, g.FirstName, g.LastName, string(g.AgeCategory), string(g.Menu),
		)
		if err != nil {
			return fmt.Errorf("failed to insert guest: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetResponse retrieves a response by ID, including its guests in roster order.
func (s *SQLiteStore) GetResponse(ctx context.Context, id string) (*models.Response, error) {
	resp := &models.Response{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, received_at FROM responses WHERE id = ?",
		id,
	).Scan(&resp.ID, &resp.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("response %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	guests, err := s.guests(ctx, id)
	if err != nil {
		return nil, err
	}
	resp.Guests = guests
	return resp, nil
}

// ListResponses returns all responses ordered by arrival.
func (s *SQLiteStore) ListResponses(ctx context.Context) ([]*models.Response, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, received_at FROM responses ORDER BY received_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}

	var out []*models.Response
	for rows.Next() {
		resp := &models.Response{}
		if err := rows.Scan(&resp.ID, &resp.ReceivedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}
	rows.Close()

	for _, resp := range out {
		guests, err := s.guests(ctx, resp.ID)
		if err != nil {
			return nil, err
		}
		resp.Guests = guests
	}
	return out, nil
}

func (s *SQLiteStore) guests(ctx context.Context, responseID string) ([]models.Guest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT first_name, last_name, age_category, menu
		 FROM guests WHERE response_id = ? ORDER BY position`,
		responseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	var guests []models.Guest
	for rows.Next() {
		var g models.Guest
		var age, menu string
		if err := rows.Scan(&g.FirstName, &g.LastName, &age, &menu); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		g.AgeCategory = models.AgeCategory(age)
		g.Menu = models.Menu(menu)
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}
	return guests, nil
}
