package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/domain"
)

// SQLitePromiseLogRepo implements PromiseLogRepo using a SQLite database.
type SQLitePromiseLogRepo struct {
	db db.DBTX
}

// NewSQLitePromiseLogRepo creates a new SQLitePromiseLogRepo.
func NewSQLitePromiseLogRepo(dbtx db.DBTX) *SQLitePromiseLogRepo {
	return &SQLitePromiseLogRepo{db: dbtx}
}

const promiseLogColumns = `id, promise_id, date, completed, daily_log_id, created_at`

func (r *SQLitePromiseLogRepo) Upsert(ctx context.Context, l *domain.PromiseLog) error {
	query := `INSERT INTO promise_logs (` + promiseLogColumns + `) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(promise_id, date) DO UPDATE SET
			completed = excluded.completed,
			daily_log_id = excluded.daily_log_id`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.PromiseID,
		l.Date.Format(dateLayout),
		boolToInt(l.Completed),
		nullableStrToValue(l.DailyLogID),
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting promise log: %w", err)
	}
	return nil
}

func (r *SQLitePromiseLogRepo) GetByPromiseAndDate(ctx context.Context, promiseID string, date time.Time) (*domain.PromiseLog, error) {
	query := `SELECT ` + promiseLogColumns + ` FROM promise_logs WHERE promise_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, promiseID, date.Format(dateLayout))

	l, err := scanPromiseLog(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("promise log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning promise log: %w", err)
	}
	return l, nil
}

func (r *SQLitePromiseLogRepo) ListByPromise(ctx context.Context, promiseID string) ([]domain.PromiseLog, error) {
	query := `SELECT ` + promiseLogColumns + ` FROM promise_logs WHERE promise_id = ? ORDER BY date`
	return r.queryLogs(ctx, query, promiseID)
}

func (r *SQLitePromiseLogRepo) ListRange(ctx context.Context, start, end time.Time) ([]domain.PromiseLog, error) {
	query := `SELECT ` + promiseLogColumns + ` FROM promise_logs WHERE date >= ? AND date <= ? ORDER BY date`
	return r.queryLogs(ctx, query, start.Format(dateLayout), end.Format(dateLayout))
}

func (r *SQLitePromiseLogRepo) HasAnyForPromise(ctx context.Context, promiseID string) (bool, error) {
	var n int
	query := `SELECT COUNT(1) FROM promise_logs WHERE promise_id = ?`
	if err := r.db.QueryRowContext(ctx, query, promiseID).Scan(&n); err != nil {
		return false, fmt.Errorf("counting promise logs: %w", err)
	}
	return n > 0, nil
}

func (r *SQLitePromiseLogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM promise_logs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting promise log: %w", err)
	}
	return nil
}

func (r *SQLitePromiseLogRepo) queryLogs(ctx context.Context, query string, args ...any) ([]domain.PromiseLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing promise logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.PromiseLog
	for rows.Next() {
		l, scanErr := scanPromiseLog(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scanning promise log row: %w", scanErr)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating promise logs: %w", err)
	}
	return logs, nil
}

func scanPromiseLog(scan func(...any) error) (*domain.PromiseLog, error) {
	var l domain.PromiseLog
	var dateStr, createdStr string
	var completed int
	var dailyLogID sql.NullString

	err := scan(&l.ID, &l.PromiseID, &dateStr, &completed, &dailyLogID, &createdStr)
	if err != nil {
		return nil, err
	}

	l.Completed = intToBool(completed)
	if dailyLogID.Valid {
		l.DailyLogID = &dailyLogID.String
	}
	if l.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing promise log date: %w", err)
	}
	if l.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing promise log created_at: %w", err)
	}
	return &l, nil
}
