package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/domain"
)

// SQLitePriorityRepo implements PriorityRepo using a SQLite database.
type SQLitePriorityRepo struct {
	db db.DBTX
}

// NewSQLitePriorityRepo creates a new SQLitePriorityRepo.
func NewSQLitePriorityRepo(dbtx db.DBTX) *SQLitePriorityRepo {
	return &SQLitePriorityRepo{db: dbtx}
}

func (r *SQLitePriorityRepo) Upsert(ctx context.Context, p *domain.Priority) error {
	query := `INSERT INTO priorities (key, name, weekly_target_units, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			weekly_target_units = excluded.weekly_target_units`
	_, err := r.db.ExecContext(ctx, query,
		p.Key, p.Name, p.WeeklyTargetUnits, p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting priority: %w", err)
	}
	return nil
}

func (r *SQLitePriorityRepo) Get(ctx context.Context, key string) (*domain.Priority, error) {
	query := `SELECT key, name, weekly_target_units, created_at FROM priorities WHERE key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var p domain.Priority
	var createdStr string
	err := row.Scan(&p.Key, &p.Name, &p.WeeklyTargetUnits, &createdStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("priority: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning priority: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing priority created_at: %w", err)
	}
	return &p, nil
}

func (r *SQLitePriorityRepo) List(ctx context.Context) ([]*domain.Priority, error) {
	query := `SELECT key, name, weekly_target_units, created_at FROM priorities ORDER BY key`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing priorities: %w", err)
	}
	defer rows.Close()

	var priorities []*domain.Priority
	for rows.Next() {
		var p domain.Priority
		var createdStr string
		if err := rows.Scan(&p.Key, &p.Name, &p.WeeklyTargetUnits, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning priority row: %w", err)
		}
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing priority created_at: %w", err)
		}
		priorities = append(priorities, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating priorities: %w", err)
	}
	return priorities, nil
}

func (r *SQLitePriorityRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM priorities WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting priority: %w", err)
	}
	return nil
}
