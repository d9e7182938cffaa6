package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/domain"
)

// SQLiteDailyLogRepo implements DailyLogRepo using a SQLite database.
// Upsert replaces child rows wholesale, so callers should run it inside a
// UnitOfWork transaction.
type SQLiteDailyLogRepo struct {
	db db.DBTX
}

// NewSQLiteDailyLogRepo creates a new SQLiteDailyLogRepo.
func NewSQLiteDailyLogRepo(dbtx db.DBTX) *SQLiteDailyLogRepo {
	return &SQLiteDailyLogRepo{db: dbtx}
}

func (r *SQLiteDailyLogRepo) Upsert(ctx context.Context, d *domain.DailyLog) error {
	dateStr := d.Date.Format(dateLayout)

	var existingID string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM daily_logs WHERE date = ?`, dateStr).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		query := `INSERT INTO daily_logs (id, date, energy, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query,
			d.ID, dateStr, d.Energy, d.Notes,
			d.CreatedAt.Format(time.RFC3339),
			d.UpdatedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting daily log: %w", err)
		}
	case err != nil:
		return fmt.Errorf("looking up daily log by date: %w", err)
	default:
		// Keep the stored id stable across upserts.
		d.ID = existingID
		query := `UPDATE daily_logs SET energy = ?, notes = ?, updated_at = ? WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, query,
			d.Energy, d.Notes, d.UpdatedAt.Format(time.RFC3339), d.ID,
		); err != nil {
			return fmt.Errorf("updating daily log: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, `DELETE FROM priority_logs WHERE daily_log_id = ?`, d.ID); err != nil {
			return fmt.Errorf("clearing priority logs: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, `DELETE FROM proof_entries WHERE daily_log_id = ?`, d.ID); err != nil {
			return fmt.Errorf("clearing proof entries: %w", err)
		}
	}

	for i := range d.PriorityLogs {
		pl := &d.PriorityLogs[i]
		pl.DailyLogID = d.ID
		query := `INSERT INTO priority_logs (id, daily_log_id, key, units, effort, created_at) VALUES (?, ?, ?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query,
			pl.ID, pl.DailyLogID, pl.Key, pl.Units, pl.Effort,
			pl.CreatedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting priority log: %w", err)
		}
	}

	for i := range d.ProofEntries {
		pe := &d.ProofEntries[i]
		pe.DailyLogID = d.ID
		query := `INSERT INTO proof_entries (id, daily_log_id, text, created_at) VALUES (?, ?, ?, ?)`
		if _, err := r.db.ExecContext(ctx, query,
			pe.ID, pe.DailyLogID, pe.Text,
			pe.CreatedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting proof entry: %w", err)
		}
	}

	return nil
}

func (r *SQLiteDailyLogRepo) GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error) {
	query := `SELECT id, date, energy, notes, created_at, updated_at FROM daily_logs WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date.Format(dateLayout))

	d, err := scanDailyLog(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily log: %w", err)
	}
	if err := r.loadChildren(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *SQLiteDailyLogRepo) ListRange(ctx context.Context, start, end time.Time) ([]*domain.DailyLog, error) {
	query := `SELECT id, date, energy, notes, created_at, updated_at
		FROM daily_logs WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.DailyLog
	for rows.Next() {
		d, scanErr := scanDailyLog(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scanning daily log row: %w", scanErr)
		}
		logs = append(logs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily logs: %w", err)
	}

	for _, d := range logs {
		if err := r.loadChildren(ctx, d); err != nil {
			return nil, err
		}
	}
	return logs, nil
}

func (r *SQLiteDailyLogRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM daily_logs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting daily log: %w", err)
	}
	return nil
}

func (r *SQLiteDailyLogRepo) loadChildren(ctx context.Context, d *domain.DailyLog) error {
	plQuery := `SELECT id, daily_log_id, key, units, effort, created_at
		FROM priority_logs WHERE daily_log_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, plQuery, d.ID)
	if err != nil {
		return fmt.Errorf("listing priority logs: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pl domain.PriorityLog
		var createdStr string
		if err := rows.Scan(&pl.ID, &pl.DailyLogID, &pl.Key, &pl.Units, &pl.Effort, &createdStr); err != nil {
			return fmt.Errorf("scanning priority log: %w", err)
		}
		if pl.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return fmt.Errorf("parsing priority log created_at: %w", err)
		}
		d.PriorityLogs = append(d.PriorityLogs, pl)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating priority logs: %w", err)
	}

	peQuery := `SELECT id, daily_log_id, text, created_at
		FROM proof_entries WHERE daily_log_id = ? ORDER BY created_at, id`
	peRows, err := r.db.QueryContext(ctx, peQuery, d.ID)
	if err != nil {
		return fmt.Errorf("listing proof entries: %w", err)
	}
	defer peRows.Close()
	for peRows.Next() {
		var pe domain.ProofEntry
		var createdStr string
		if err := peRows.Scan(&pe.ID, &pe.DailyLogID, &pe.Text, &createdStr); err != nil {
			return fmt.Errorf("scanning proof entry: %w", err)
		}
		if pe.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return fmt.Errorf("parsing proof entry created_at: %w", err)
		}
		d.ProofEntries = append(d.ProofEntries, pe)
	}
	if err := peRows.Err(); err != nil {
		return fmt.Errorf("iterating proof entries: %w", err)
	}
	return nil
}

func scanDailyLog(scan func(...any) error) (*domain.DailyLog, error) {
	var d domain.DailyLog
	var dateStr, createdStr, updatedStr string

	err := scan(&d.ID, &dateStr, &d.Energy, &d.Notes, &createdStr, &updatedStr)
	if err != nil {
		return nil, err
	}

	if d.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing daily log date: %w", err)
	}
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing daily log created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return nil, fmt.Errorf("parsing daily log updated_at: %w", err)
	}
	return &d, nil
}
