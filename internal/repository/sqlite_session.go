package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claraval/serein/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// The derived payloads (answers, profile, scenarios, diagnostic, plan) are
// stored as JSON columns; unreadable JSON decodes to empty defaults rather
// than failing the read path.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

const sessionColumns = `id, completed_at, answers_json, shown_json, profile_json, scenarios_json, diagnostic_json, plan_json`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.CompletedAt.UTC().Format(time.RFC3339),
		marshal(s.Answers),
		marshal(s.Shown),
		marshal(s.Profile),
		marshal(s.Scenarios),
		marshal(s.Diagnostic),
		marshal(s.Plan),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSessionRepo) Latest(ctx context.Context) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY completed_at DESC LIMIT 1`
	return r.scanSession(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY completed_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSessionRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	s, err := scanSessionRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session: %w", ErrNotFound)
	}
	return s, err
}

func scanSessionRow(scan func(...any) error) (*domain.Session, error) {
	var s domain.Session
	var completedAt string
	var answers, shown, profile, scenarios, diagnostic, plan string

	if err := scan(&s.ID, &completedAt, &answers, &shown, &profile, &scenarios, &diagnostic, &plan); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, completedAt); err == nil {
		s.CompletedAt = t
	}
	unmarshal(answers, &s.Answers)
	unmarshal(shown, &s.Shown)
	unmarshal(profile, &s.Profile)
	unmarshal(scenarios, &s.Scenarios)
	unmarshal(diagnostic, &s.Diagnostic)
	unmarshal(plan, &s.Plan)
	return &s, nil
}

func marshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// unmarshal decodes into v, leaving the zero value in place on malformed
// input. Persisted state must never crash the read path.
func unmarshal(data string, v any) {
	_ = json.Unmarshal([]byte(data), v)
}
