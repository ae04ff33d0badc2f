package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/standing"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
)

const defaultRebuildWorkers = 4

type RebuildResult struct {
	CountryCount int                 `json:"country_count"`
	PhaseCount   int                 `json:"phase_count"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	WorkerCount  int                 `json:"worker_count"`
	Tasks        []RebuildTaskResult `json:"tasks"`
}

type RebuildTaskResult struct {
	Kind       string `json:"kind"`
	Key        string `json:"key"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	rebuildStatusSuccess = "success"
	rebuildStatusFailed  = "failed"

	rebuildKindCountry = "country"
	rebuildKindPhase   = "phase"
)

type ReportService struct {
	tx             store.Transactor
	logger         *logging.Logger
	rebuildWorkers int
	now            func() time.Time
}

func NewReportService(tx store.Transactor, logger *logging.Logger, rebuildWorkers int) *ReportService {
	if logger == nil {
		logger = logging.Default()
	}
	if rebuildWorkers <= 0 {
		rebuildWorkers = defaultRebuildWorkers
	}
	return &ReportService{
		tx:             tx,
		logger:         logger,
		rebuildWorkers: rebuildWorkers,
		now:            time.Now,
	}
}

// RefreshCountry recomputes and stores the report row of one country.
func (s *ReportService) RefreshCountry(ctx context.Context, country team.Country) (report.CountryReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.RefreshCountry")
	defer span.End()

	if !country.Valid() {
		return report.CountryReport{}, fmt.Errorf("%w: unknown country %q", ErrInvalidInput, country)
	}

	var out report.CountryReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, err := refreshCountryReport(ctx, uow, country, s.now().UTC())
		if err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return report.CountryReport{}, err
	}
	return out, nil
}

// RefreshPhase recomputes and stores the report row of one phase.
func (s *ReportService) RefreshPhase(ctx context.Context, phase match.Phase) (report.PhaseReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.RefreshPhase")
	defer span.End()

	if !phase.Valid() {
		return report.PhaseReport{}, fmt.Errorf("%w: unknown phase %q", ErrInvalidInput, phase)
	}

	var out report.PhaseReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, err := refreshPhaseReport(ctx, uow, phase, s.now().UTC())
		if err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return report.PhaseReport{}, err
	}
	return out, nil
}

// GetCountry returns the stored row, generating it on first access.
func (s *ReportService) GetCountry(ctx context.Context, country team.Country) (report.CountryReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GetCountry")
	defer span.End()

	if !country.Valid() {
		return report.CountryReport{}, fmt.Errorf("%w: unknown country %q", ErrInvalidInput, country)
	}

	var out report.CountryReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Reports().GetCountry(ctx, country)
		if err != nil {
			return fmt.Errorf("get country report country=%s: %w", country, err)
		}
		if !exists {
			item, err = refreshCountryReport(ctx, uow, country, s.now().UTC())
			if err != nil {
				return err
			}
		}
		out = item
		return nil
	})
	if err != nil {
		return report.CountryReport{}, err
	}
	return out, nil
}

// GetPhase returns the stored row, generating it on first access.
func (s *ReportService) GetPhase(ctx context.Context, phase match.Phase) (report.PhaseReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GetPhase")
	defer span.End()

	if !phase.Valid() {
		return report.PhaseReport{}, fmt.Errorf("%w: unknown phase %q", ErrInvalidInput, phase)
	}

	var out report.PhaseReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Reports().GetPhase(ctx, phase)
		if err != nil {
			return fmt.Errorf("get phase report phase=%s: %w", phase, err)
		}
		if !exists {
			item, err = refreshPhaseReport(ctx, uow, phase, s.now().UTC())
			if err != nil {
				return err
			}
		}
		out = item
		return nil
	})
	if err != nil {
		return report.PhaseReport{}, err
	}
	return out, nil
}

func (s *ReportService) ListCountries(ctx context.Context) ([]report.CountryReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.ListCountries")
	defer span.End()

	var out []report.CountryReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		items, err := uow.Reports().ListCountries(ctx)
		if err != nil {
			return fmt.Errorf("list country reports: %w", err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ReportService) ListPhases(ctx context.Context) ([]report.PhaseReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.ListPhases")
	defer span.End()

	var out []report.PhaseReport
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		items, err := uow.Reports().ListPhases(ctx)
		if err != nil {
			return fmt.Errorf("list phase reports: %w", err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Phase.Order() < out[j].Phase.Order()
	})
	return out, nil
}

// Standings computes group tables on every call. An empty group label
// returns every group.
func (s *ReportService) Standings(ctx context.Context, group string) ([]standing.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Standings")
	defer span.End()

	var (
		teams   []team.Team
		matches []match.Match
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		var err error
		teams, err = uow.Teams().List(ctx, team.ListFilter{Active: true})
		if err != nil {
			return fmt.Errorf("list teams for standings: %w", err)
		}
		matches, err = uow.Matches().List(ctx, match.ListFilter{Active: true})
		if err != nil {
			return fmt.Errorf("list matches for standings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	groups := standing.Compute(teams, matches)
	group = strings.TrimSpace(group)
	if group == "" {
		return groups, nil
	}
	for _, g := range groups {
		if strings.EqualFold(g.Label, group) {
			return []standing.Group{g}, nil
		}
	}
	return nil, fmt.Errorf("%w: group %q has no active teams", ErrNotFound, group)
}

// RebuildAll regenerates every country and phase row, each in its own
// transaction, on a bounded worker pool.
func (s *ReportService) RebuildAll(ctx context.Context) (RebuildResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.RebuildAll")
	defer span.End()

	countries := team.Countries()
	phases := match.Phases()
	result := RebuildResult{
		CountryCount: len(countries),
		PhaseCount:   len(phases),
		WorkerCount:  s.rebuildWorkers,
	}

	type rebuildTask struct {
		kind string
		key  string
		run  func(ctx context.Context) error
	}
	tasks := make([]rebuildTask, 0, len(countries)+len(phases))
	for _, country := range countries {
		country := country
		tasks = append(tasks, rebuildTask{kind: rebuildKindCountry, key: string(country), run: func(ctx context.Context) error {
			_, err := s.RefreshCountry(ctx, country)
			return err
		}})
	}
	for _, phase := range phases {
		phase := phase
		tasks = append(tasks, rebuildTask{kind: rebuildKindPhase, key: string(phase), run: func(ctx context.Context) error {
			_, err := s.RefreshPhase(ctx, phase)
			return err
		}})
	}

	results := make(chan RebuildTaskResult, len(tasks))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(s.rebuildWorkers)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	var submitErr error
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RebuildTaskResult{Kind: task.kind, Key: task.key, Status: rebuildStatusSuccess}
			if err := task.run(ctx); err != nil {
				row.Status = rebuildStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.WarnContext(ctx, "report rebuild task failed", "kind", task.kind, "key", task.key, "error", err)
			} else {
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit task to worker pool: %w", err)
			break
		}
	}

	workers.Wait()
	close(results)
	if submitErr != nil {
		return RebuildResult{}, submitErr
	}

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].Kind != result.Tasks[j].Kind {
			return result.Tasks[i].Kind < result.Tasks[j].Kind
		}
		return result.Tasks[i].Key < result.Tasks[j].Key
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	s.logger.InfoContext(ctx, "reports rebuilt",
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"workers", result.WorkerCount,
	)
	return result, nil
}
