package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/domain"
)

// SQLiteSprintRepo implements SprintRepo using a SQLite database.
type SQLiteSprintRepo struct {
	db db.DBTX
}

// NewSQLiteSprintRepo creates a new SQLiteSprintRepo.
func NewSQLiteSprintRepo(dbtx db.DBTX) *SQLiteSprintRepo {
	return &SQLiteSprintRepo{db: dbtx}
}

const sprintColumns = `id, name, start_date, end_date, status, created_at, updated_at`

func (r *SQLiteSprintRepo) Create(ctx context.Context, s *domain.Sprint) error {
	query := `INSERT INTO sprints (` + sprintColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.StartDate.Format(dateLayout),
		s.EndDate.Format(dateLayout),
		string(s.Status),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE id = ?`
	return r.scanSprint(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteSprintRepo) GetActive(ctx context.Context) (*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE status = 'active' LIMIT 1`
	return r.scanSprint(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteSprintRepo) List(ctx context.Context) ([]*domain.Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints ORDER BY start_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	defer rows.Close()

	var sprints []*domain.Sprint
	for rows.Next() {
		s, scanErr := scanSprintRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprints: %w", err)
	}
	return sprints, nil
}

func (r *SQLiteSprintRepo) Update(ctx context.Context, s *domain.Sprint) error {
	query := `UPDATE sprints SET name = ?, start_date = ?, end_date = ?, status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.StartDate.Format(dateLayout),
		s.EndDate.Format(dateLayout),
		string(s.Status),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sprint: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating sprint: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("sprint %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSprintRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sprints WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting sprint: %w", err)
	}
	return nil
}

func (r *SQLiteSprintRepo) scanSprint(row *sql.Row) (*domain.Sprint, error) {
	var s domain.Sprint
	var startStr, endStr, status, createdStr, updatedStr string
	err := row.Scan(&s.ID, &s.Name, &startStr, &endStr, &status, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sprint: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning sprint: %w", err)
	}
	return populateSprint(&s, startStr, endStr, status, createdStr, updatedStr)
}

func scanSprintRow(rows *sql.Rows) (*domain.Sprint, error) {
	var s domain.Sprint
	var startStr, endStr, status, createdStr, updatedStr string
	if err := rows.Scan(&s.ID, &s.Name, &startStr, &endStr, &status, &createdStr, &updatedStr); err != nil {
		return nil, fmt.Errorf("scanning sprint row: %w", err)
	}
	return populateSprint(&s, startStr, endStr, status, createdStr, updatedStr)
}

func populateSprint(s *domain.Sprint, startStr, endStr, status, createdStr, updatedStr string) (*domain.Sprint, error) {
	var err error
	if s.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return nil, fmt.Errorf("parsing sprint start_date: %w", err)
	}
	if s.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return nil, fmt.Errorf("parsing sprint end_date: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing sprint created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing sprint updated_at: %w", err)
	}
	s.Status = domain.SprintStatus(status)
	return s, nil
}
