package service

import (
	"context"
	"errors"
	"time"

	"github.com/keptapp/kept/internal/analytics"
	"github.com/keptapp/kept/internal/app"
	"github.com/keptapp/kept/internal/contract"
	"github.com/keptapp/kept/internal/domain"
	"github.com/keptapp/kept/internal/repository"
)

type reviewService struct {
	sprints     repository.SprintRepo
	goals       repository.GoalRepo
	promises    repository.PromiseRepo
	promiseLogs repository.PromiseLogRepo
	dailyLogs   repository.DailyLogRepo
	priorities  repository.PriorityRepo
	observer    UseCaseObserver
}

func NewReviewService(
	sprints repository.SprintRepo,
	goals repository.GoalRepo,
	promises repository.PromiseRepo,
	promiseLogs repository.PromiseLogRepo,
	dailyLogs repository.DailyLogRepo,
	priorities repository.PriorityRepo,
	observers ...UseCaseObserver,
) ReviewService {
	return &reviewService{
		sprints:     sprints,
		goals:       goals,
		promises:    promises,
		promiseLogs: promiseLogs,
		dailyLogs:   dailyLogs,
		priorities:  priorities,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *reviewService) WeeklyReview(ctx context.Context, req contract.WeeklyReviewRequest) (summary *contract.WeeklySummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "weekly-review",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := resolveNow(req.Now)
	date := req.Date
	if date.IsZero() {
		date = now
	}
	window := analytics.WeekWindow(date)
	fields["week_start"] = window.Start.Format("2006-01-02")

	in, loadErr := s.loadWeekInput(ctx, window)
	if loadErr != nil {
		err = internalReviewError(loadErr)
		return nil, err
	}

	res := analytics.WeekStats(*in)

	score, scoreErr := analytics.IntegrityScore(res.MotionUnits, res.ActionUnits)
	if scoreErr != nil {
		err = internalReviewError(scoreErr)
		return nil, err
	}

	period := analytics.PeriodInput{
		DaysLogged:   res.DaysLogged,
		AvgEnergy:    res.AvgEnergy,
		MotionUnits:  res.MotionUnits,
		ActionUnits:  res.ActionUnits,
		SeriesRatios: seriesRatios(res.Goals, res.Priorities),
	}

	return &app.WeeklySummary{
		WeekStart: window.Start,
		WeekEnd:   window.End,

		Goals:       goalSummaries(res.Goals),
		TotalKept:   res.TotalKept,
		TotalTarget: res.TotalTarget,
		Ratio:       res.Ratio,

		DaysLogged: res.DaysLogged,
		AvgEnergy:  res.AvgEnergy,

		Priorities:     prioritySummaries(res.Priorities),
		MotionUnits:    res.MotionUnits,
		ActionUnits:    res.ActionUnits,
		IntegrityScore: score,

		Alerts:         analytics.EvaluateAlerts(period),
		PrimaryInsight: analytics.PrimaryInsight(period),
		AtRisk:         atRiskSummaries(allProgresses(res.Goals)),
	}, nil
}

func (s *reviewService) MonthlyReview(ctx context.Context, req contract.MonthlyReviewRequest) (summary *contract.MonthlySummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"year": req.Year, "month": int(req.Month)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "monthly-review",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if req.Month < time.January || req.Month > time.December || req.Year < 1 {
		err = &app.ReviewError{
			Code:    app.ReviewErrInvalidPeriod,
			Message: "month must be 1..12 and year positive",
		}
		return nil, err
	}

	window := analytics.MonthWindow(req.Year, req.Month)

	in, loadErr := s.loadWeekInput(ctx, window)
	if loadErr != nil {
		err = internalReviewError(loadErr)
		return nil, err
	}

	monthRes := analytics.MonthStats(analytics.MonthInput{
		Window:    window,
		Goals:     in.Goals,
		Promises:  in.Promises,
		Logs:      in.Logs,
		DailyLogs: in.DailyLogs,
	})

	// Energy and the motion/action split come from the same window
	// aggregation the weekly review uses; priority pacing is weekly-only.
	in.Priorities = nil
	windowRes := analytics.WeekStats(*in)

	period := analytics.PeriodInput{
		DaysLogged:   monthRes.DaysLogged,
		AvgEnergy:    windowRes.AvgEnergy,
		MotionUnits:  windowRes.MotionUnits,
		ActionUnits:  windowRes.ActionUnits,
		SeriesRatios: seriesRatios(monthRes.Goals, nil),
	}

	return &app.MonthlySummary{
		Year:  req.Year,
		Month: req.Month,

		Goals:       goalSummaries(monthRes.Goals),
		TotalKept:   monthRes.TotalKept,
		TotalTarget: monthRes.TotalTarget,
		Ratio:       monthRes.Ratio,

		DaysLogged:    monthRes.DaysLogged,
		LongestStreak: monthRes.LongestStreak,

		Alerts:         analytics.EvaluateAlerts(period),
		PrimaryInsight: analytics.PrimaryInsight(period),
		AtRisk:         atRiskSummaries(allProgresses(monthRes.Goals)),
	}, nil
}

func (s *reviewService) SprintReview(ctx context.Context, req contract.SprintReviewRequest) (summary *contract.SprintSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "sprint-review",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	sp, resolveErr := s.resolveSprint(ctx, req.SprintID)
	if resolveErr != nil {
		err = resolveErr
		return nil, err
	}
	fields["sprint"] = sp.Name

	goals, loadErr := s.goals.ListBySprint(ctx, sp.ID)
	if loadErr != nil {
		err = internalReviewError(loadErr)
		return nil, err
	}
	promises, loadErr := s.promises.ListBySprint(ctx, sp.ID)
	if loadErr != nil {
		err = internalReviewError(loadErr)
		return nil, err
	}
	logs, loadErr := s.promiseLogs.ListRange(ctx, sp.StartDate, sp.EndDate)
	if loadErr != nil {
		err = internalReviewError(loadErr)
		return nil, err
	}

	res := analytics.SprintStats(analytics.SprintInput{
		Sprint:   *sp,
		Now:      resolveNow(req.Now),
		Goals:    derefGoals(goals),
		Promises: derefPromises(promises),
		Logs:     logs,
	})

	out := &app.SprintSummary{
		SprintID:  sp.ID,
		Name:      sp.Name,
		StartDate: sp.StartDate,
		EndDate:   sp.EndDate,

		ElapsedDays:  res.ElapsedDays,
		DurationDays: res.DurationDays,

		Goals:       goalSummaries(res.Goals),
		TotalKept:   res.TotalKept,
		TotalTarget: res.TotalTarget,
		Ratio:       res.Ratio,
		Velocity:    res.Velocity,

		AtRisk: atRiskSummaries(allProgresses(res.Goals)),
	}
	for _, w := range res.Weeks {
		out.Weeks = append(out.Weeks, app.SprintWeek{
			WeekStart:   w.Window.Start,
			WeekEnd:     w.Window.End,
			TotalKept:   w.TotalKept,
			TotalTarget: w.TotalTarget,
			Ratio:       w.Ratio,
		})
	}
	return out, nil
}

// loadWeekInput loads every record overlapping the window. Reviews are not
// scoped to a sprint: all non-archived promises participate.
func (s *reviewService) loadWeekInput(ctx context.Context, window analytics.Window) (*analytics.WeekInput, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	promises, err := s.promises.List(ctx, false)
	if err != nil {
		return nil, err
	}
	logs, err := s.promiseLogs.ListRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	dailyLogs, err := s.dailyLogs.ListRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	priorities, err := s.priorities.List(ctx)
	if err != nil {
		return nil, err
	}
	return &analytics.WeekInput{
		Window:     window,
		Goals:      derefGoals(goals),
		Promises:   derefPromises(promises),
		Logs:       logs,
		DailyLogs:  derefDailyLogs(dailyLogs),
		Priorities: derefPriorities(priorities),
	}, nil
}

func (s *reviewService) resolveSprint(ctx context.Context, id string) (sp *domain.Sprint, err error) {
	if id == "" {
		active, getErr := s.sprints.GetActive(ctx)
		if getErr != nil {
			if errors.Is(getErr, repository.ErrNotFound) {
				return nil, &app.ReviewError{
					Code:    app.ReviewErrNoActiveSprint,
					Message: "no active sprint; pass a sprint id",
				}
			}
			return nil, internalReviewError(getErr)
		}
		return active, nil
	}

	found, getErr := s.sprints.GetByID(ctx, id)
	if getErr != nil {
		if errors.Is(getErr, repository.ErrNotFound) {
			return nil, &app.ReviewError{
				Code:    app.ReviewErrSprintNotFound,
				Message: "sprint " + id + " not found",
			}
		}
		return nil, internalReviewError(getErr)
	}
	return found, nil
}

func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return override.UTC()
	}
	return time.Now().UTC()
}

func internalReviewError(err error) *app.ReviewError {
	return &app.ReviewError{Code: app.ReviewErrInternal, Message: err.Error()}
}
