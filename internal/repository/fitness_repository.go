package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fittrack-be/internal/entities"
)

//go:generate mockgen -source=fitness_repository.go -destination=mocks/mock_fitness_repository.go -package=mocks

// FitnessRepository defines the interface for fitness entry persistence.
// Entries are append-only; ordering is date descending, then most recently inserted first.
type FitnessRepository interface {
	Insert(ctx context.Context, entry *entities.FitnessEntry) (*entities.FitnessEntry, error)
	ListByEmail(ctx context.Context, email string) ([]*entities.FitnessEntry, error)
	FindLatest(ctx context.Context, email, entryType string) (*entities.FitnessEntry, error)
}

type fitnessRepository struct {
	db *sql.DB
}

// NewFitnessRepository creates a Postgres-backed fitness repository
func NewFitnessRepository(db *sql.DB) FitnessRepository {
	return &fitnessRepository{db: db}
}

// Insert appends a new entry
func (r *fitnessRepository) Insert(ctx context.Context, entry *entities.FitnessEntry) (*entities.FitnessEntry, error) {
	query := `
		INSERT INTO fitness_entries (email, type, value, entry_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at
	`

	created := *entry
	err := r.db.QueryRowContext(ctx, query, entry.Email, entry.Type, entry.Value, entry.Date).Scan(
		&created.ID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fitness entry: %w", err)
	}

	return &created, nil
}

// ListByEmail returns every entry for the email, newest first
func (r *fitnessRepository) ListByEmail(ctx context.Context, email string) ([]*entities.FitnessEntry, error) {
	// id is selected as text, so the sort names the table column to keep numeric order.
	query := `
		SELECT id::text, email, type, value, entry_date, created_at
		FROM fitness_entries
		WHERE email = $1
		ORDER BY entry_date DESC, fitness_entries.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list fitness entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*entities.FitnessEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fitness entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fitness entries: %w", err)
	}

	return entries, nil
}

// FindLatest returns the most recent entry of the given type
func (r *fitnessRepository) FindLatest(ctx context.Context, email, entryType string) (*entities.FitnessEntry, error) {
	query := `
		SELECT id::text, email, type, value, entry_date, created_at
		FROM fitness_entries
		WHERE email = $1 AND type = $2
		ORDER BY entry_date DESC, fitness_entries.id DESC
		LIMIT 1
	`

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, email, entryType))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest fitness entry: %w", err)
	}

	return entry, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*entities.FitnessEntry, error) {
	var (
		entry entities.FitnessEntry
		date  time.Time
	)
	if err := row.Scan(&entry.ID, &entry.Email, &entry.Type, &entry.Value, &date, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.Date = date.Format(entities.DateLayout)
	return &entry, nil
}
