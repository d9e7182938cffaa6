package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(dbtx db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: dbtx}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	query := `INSERT INTO goals (id, sprint_id, objective, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.SprintID,
		g.Objective,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query := `SELECT id, sprint_id, objective, created_at, updated_at FROM goals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var g domain.Goal
	var createdStr, updatedStr string
	err := row.Scan(&g.ID, &g.SprintID, &g.Objective, &createdStr, &updatedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("goal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning goal: %w", err)
	}
	return populateGoal(&g, createdStr, updatedStr)
}

func (r *SQLiteGoalRepo) ListBySprint(ctx context.Context, sprintID string) ([]*domain.Goal, error) {
	query := `SELECT id, sprint_id, objective, created_at, updated_at FROM goals WHERE sprint_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, sprintID)
	if err != nil {
		return nil, fmt.Errorf("listing goals by sprint: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		var g domain.Goal
		var createdStr, updatedStr string
		if err := rows.Scan(&g.ID, &g.SprintID, &g.Objective, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		goal, parseErr := populateGoal(&g, createdStr, updatedStr)
		if parseErr != nil {
			return nil, parseErr
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) List(ctx context.Context) ([]*domain.Goal, error) {
	query := `SELECT id, sprint_id, objective, created_at, updated_at FROM goals ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		var g domain.Goal
		var createdStr, updatedStr string
		if err := rows.Scan(&g.ID, &g.SprintID, &g.Objective, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scanning goal row: %w", err)
		}
		goal, parseErr := populateGoal(&g, createdStr, updatedStr)
		if parseErr != nil {
			return nil, parseErr
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (r *SQLiteGoalRepo) Update(ctx context.Context, g *domain.Goal) error {
	query := `UPDATE goals SET objective = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, g.Objective, g.UpdatedAt.Format(time.RFC3339), g.ID)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", g.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteGoalRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	return nil
}

func populateGoal(g *domain.Goal, createdStr, updatedStr string) (*domain.Goal, error) {
	var err error
	if g.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing goal created_at: %w", err)
	}
	if g.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing goal updated_at: %w", err)
	}
	return g, nil
}
