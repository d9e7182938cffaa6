package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/domain"
)

// SQLitePromiseRepo implements PromiseRepo using a SQLite database.
type SQLitePromiseRepo struct {
	db db.DBTX
}

// NewSQLitePromiseRepo creates a new SQLitePromiseRepo.
func NewSQLitePromiseRepo(dbtx db.DBTX) *SQLitePromiseRepo {
	return &SQLitePromiseRepo{db: dbtx}
}

const promiseColumns = `id, goal_id, text, kind, schedule_days, weekly_target, archived_at, created_at, updated_at`

func (r *SQLitePromiseRepo) Create(ctx context.Context, p *domain.Promise) error {
	query := `INSERT INTO promises (` + promiseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.GoalID,
		p.Text,
		string(p.Kind),
		encodeWeekdays(p.ScheduleDays),
		p.WeeklyTarget,
		nullableTimeToString(p.ArchivedAt, time.RFC3339),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting promise: %w", err)
	}
	return nil
}

func (r *SQLitePromiseRepo) GetByID(ctx context.Context, id string) (*domain.Promise, error) {
	query := `SELECT ` + promiseColumns + ` FROM promises WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPromise(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("promise: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning promise: %w", err)
	}
	return p, nil
}

func (r *SQLitePromiseRepo) ListByGoal(ctx context.Context, goalID string) ([]*domain.Promise, error) {
	query := `SELECT ` + promiseColumns + ` FROM promises WHERE goal_id = ? AND archived_at IS NULL ORDER BY created_at`
	return r.queryPromises(ctx, query, goalID)
}

func (r *SQLitePromiseRepo) ListBySprint(ctx context.Context, sprintID string) ([]*domain.Promise, error) {
	query := `SELECT p.id, p.goal_id, p.text, p.kind, p.schedule_days, p.weekly_target, p.archived_at, p.created_at, p.updated_at
		FROM promises p
		JOIN goals g ON p.goal_id = g.id
		WHERE g.sprint_id = ? AND p.archived_at IS NULL
		ORDER BY g.created_at, p.created_at`
	return r.queryPromises(ctx, query, sprintID)
}

func (r *SQLitePromiseRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Promise, error) {
	query := `SELECT ` + promiseColumns + ` FROM promises ORDER BY created_at`
	if !includeArchived {
		query = `SELECT ` + promiseColumns + ` FROM promises WHERE archived_at IS NULL ORDER BY created_at`
	}
	return r.queryPromises(ctx, query)
}

func (r *SQLitePromiseRepo) Update(ctx context.Context, p *domain.Promise) error {
	query := `UPDATE promises SET text = ?, kind = ?, schedule_days = ?, weekly_target = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Text,
		string(p.Kind),
		encodeWeekdays(p.ScheduleDays),
		p.WeeklyTarget,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating promise: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating promise: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("promise %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePromiseRepo) Archive(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE promises SET archived_at = ?, updated_at = ? WHERE id = ? AND archived_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return fmt.Errorf("archiving promise: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("archiving promise: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("promise %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePromiseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM promises WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting promise: %w", err)
	}
	return nil
}

func (r *SQLitePromiseRepo) queryPromises(ctx context.Context, query string, args ...any) ([]*domain.Promise, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing promises: %w", err)
	}
	defer rows.Close()

	var promises []*domain.Promise
	for rows.Next() {
		p, scanErr := scanPromise(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scanning promise row: %w", scanErr)
		}
		promises = append(promises, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating promises: %w", err)
	}
	return promises, nil
}

// scanPromise works for both *sql.Row and *sql.Rows via their shared Scan
// signature.
func scanPromise(scan func(...any) error) (*domain.Promise, error) {
	var p domain.Promise
	var kind, scheduleStr, createdStr, updatedStr string
	var archivedAt sql.NullString

	err := scan(&p.ID, &p.GoalID, &p.Text, &kind, &scheduleStr, &p.WeeklyTarget, &archivedAt, &createdStr, &updatedStr)
	if err != nil {
		return nil, err
	}

	p.Kind = domain.PromiseKind(kind)
	p.ScheduleDays = parseWeekdays(scheduleStr)
	p.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing promise created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing promise updated_at: %w", err)
	}
	return &p, nil
}
