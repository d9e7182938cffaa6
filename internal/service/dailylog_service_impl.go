package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/keptapp/kept/internal/analytics"
	"github.com/keptapp/kept/internal/db"
	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
)

type dailyLogService struct {
	dailyLogs  repository.DailyLogRepo
	priorities repository.PriorityRepo
	uow        db.UnitOfWork
}

func NewDailyLogService(
	dailyLogs repository.DailyLogRepo,
	priorities repository.PriorityRepo,
	uow db.UnitOfWork,
) DailyLogService {
	return &dailyLogService{dailyLogs: dailyLogs, priorities: priorities, uow: uow}
}

// Upsert writes the audit record for one calendar date. Claimed units require
// proof-of-work text; unknown priority keys are rejected.
func (s *dailyLogService) Upsert(ctx context.Context, d *domain.DailyLog) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	d.Date = analytics.DateOnly(d.Date)
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := d.Validate(); err != nil {
		return err
	}

	totalUnits := 0
	for i := range d.PriorityLogs {
		pl := &d.PriorityLogs[i]
		if pl.ID == "" {
			pl.ID = uuid.New().String()
		}
		pl.CreatedAt = now
		totalUnits += pl.Units
	}
	for i := range d.ProofEntries {
		pe := &d.ProofEntries[i]
		if pe.ID == "" {
			pe.ID = uuid.New().String()
		}
		pe.CreatedAt = now
	}

	if !analytics.ValidateProofOfWork(totalUnits, joinProof(d.ProofEntries)) {
		return fmt.Errorf("claimed %d units without substantive proof of work", totalUnits)
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPriorities := repository.NewSQLitePriorityRepo(tx)
		txDailyLogs := repository.NewSQLiteDailyLogRepo(tx)

		for _, pl := range d.PriorityLogs {
			if _, err := txPriorities.Get(ctx, pl.Key); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("unknown priority key %q; define it first", pl.Key)
				}
				return err
			}
		}

		return txDailyLogs.Upsert(ctx, d)
	})
}

func (s *dailyLogService) GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error) {
	return s.dailyLogs.GetByDate(ctx, analytics.DateOnly(date))
}

func (s *dailyLogService) ListRange(ctx context.Context, start, end time.Time) ([]*domain.DailyLog, error) {
	return s.dailyLogs.ListRange(ctx, analytics.DateOnly(start), analytics.DateOnly(end))
}

func joinProof(entries []domain.ProofEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Text)
	}
	return strings.Join(parts, "\n")
}
