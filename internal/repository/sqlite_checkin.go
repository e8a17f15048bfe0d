package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/claraval/serein/internal/domain"
)

// SQLiteCheckInRepo implements CheckInRepo using a SQLite database.
type SQLiteCheckInRepo struct {
	db *sql.DB
}

// NewSQLiteCheckInRepo creates a new SQLiteCheckInRepo.
func NewSQLiteCheckInRepo(db *sql.DB) *SQLiteCheckInRepo {
	return &SQLiteCheckInRepo{db: db}
}

func (r *SQLiteCheckInRepo) Upsert(ctx context.Context, c *domain.CheckIn) error {
	query := `INSERT INTO checkins (date, done, note, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET done = excluded.done, note = excluded.note`
	_, err := r.db.ExecContext(ctx, query,
		c.Date,
		boolToInt(c.Done),
		c.Note,
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting check-in: %w", err)
	}
	return nil
}

func (r *SQLiteCheckInRepo) Get(ctx context.Context, date string) (*domain.CheckIn, error) {
	query := `SELECT date, done, note, created_at FROM checkins WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date)

	c, err := scanCheckIn(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("check-in: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCheckInRepo) ListRecent(ctx context.Context, days int) ([]domain.CheckIn, error) {
	query := `SELECT date, done, note, created_at FROM checkins
		WHERE date >= date('now', ? || ' days')
		ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent check-ins: %w", err)
	}
	defer rows.Close()
	return scanCheckIns(rows)
}

func (r *SQLiteCheckInRepo) List(ctx context.Context) ([]domain.CheckIn, error) {
	query := `SELECT date, done, note, created_at FROM checkins ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	defer rows.Close()
	return scanCheckIns(rows)
}

func scanCheckIns(rows *sql.Rows) ([]domain.CheckIn, error) {
	var out []domain.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return out, nil
}

func scanCheckIn(scan func(...any) error) (*domain.CheckIn, error) {
	var c domain.CheckIn
	var done int
	var createdAt string

	if err := scan(&c.Date, &done, &c.Note, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning check-in: %w", err)
	}
	c.Done = done != 0
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		c.CreatedAt = t
	}
	return &c, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
