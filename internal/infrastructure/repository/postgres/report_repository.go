package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	qb "github.com/riskibarqy/copa-admin/internal/platform/querybuilder"
)

type ReportRepository struct {
	exec sqlx.ExtContext
}

func NewReportRepository(exec sqlx.ExtContext) *ReportRepository {
	return &ReportRepository{exec: exec}
}

func (r *ReportRepository) UpsertCountry(ctx context.Context, item report.CountryReport) error {
	query, args, err := qb.InsertModel("country_reports", countryReportFromDomain(item), `
ON CONFLICT (country) DO UPDATE SET
	total_teams = EXCLUDED.total_teams,
	total_points = EXCLUDED.total_points,
	avg_goals_for = EXCLUDED.avg_goals_for,
	avg_goals_against = EXCLUDED.avg_goals_against,
	updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert country report query: %w", err)
	}

	if _, err := r.exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert country report %s: %w", item.Country, err)
	}
	return nil
}

func (r *ReportRepository) GetCountry(ctx context.Context, country team.Country) (report.CountryReport, bool, error) {
	query, args, err := qb.Select(countryReportColumns).From("country_reports").
		Where(qb.Eq("country", string(country))).
		ToSQL()
	if err != nil {
		return report.CountryReport{}, false, fmt.Errorf("build get country report query: %w", err)
	}

	var row countryReportTableModel
	if err := sqlx.GetContext(ctx, r.exec, &row, query, args...); err != nil {
		if isNotFound(err) {
			return report.CountryReport{}, false, nil
		}
		return report.CountryReport{}, false, fmt.Errorf("get country report: %w", err)
	}
	return row.toDomain(), true, nil
}

// ListCountries returns rows in federation order.
func (r *ReportRepository) ListCountries(ctx context.Context) ([]report.CountryReport, error) {
	query, args, err := qb.Select(countryReportColumns).From("country_reports").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list country reports query: %w", err)
	}

	var rows []countryReportTableModel
	if err := sqlx.SelectContext(ctx, r.exec, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list country reports: %w", err)
	}

	order := make(map[team.Country]int, len(team.Countries()))
	for i, c := range team.Countries() {
		order[c] = i
	}
	out := make([]report.CountryReport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return order[out[i].Country] < order[out[j].Country]
	})
	return out, nil
}

func (r *ReportRepository) UpsertPhase(ctx context.Context, item report.PhaseReport) error {
	query, args, err := qb.InsertModel("phase_reports", phaseReportFromDomain(item), `
ON CONFLICT (phase) DO UPDATE SET
	total_matches = EXCLUDED.total_matches,
	total_goals = EXCLUDED.total_goals,
	avg_goals_per_match = EXCLUDED.avg_goals_per_match,
	updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert phase report query: %w", err)
	}

	if _, err := r.exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert phase report %s: %w", item.Phase, err)
	}
	return nil
}

func (r *ReportRepository) GetPhase(ctx context.Context, phase match.Phase) (report.PhaseReport, bool, error) {
	query, args, err := qb.Select(phaseReportColumns).From("phase_reports").
		Where(qb.Eq("phase", string(phase))).
		ToSQL()
	if err != nil {
		return report.PhaseReport{}, false, fmt.Errorf("build get phase report query: %w", err)
	}

	var row phaseReportTableModel
	if err := sqlx.GetContext(ctx, r.exec, &row, query, args...); err != nil {
		if isNotFound(err) {
			return report.PhaseReport{}, false, nil
		}
		return report.PhaseReport{}, false, fmt.Errorf("get phase report: %w", err)
	}
	return row.toDomain(), true, nil
}

// ListPhases returns rows in stage order.
func (r *ReportRepository) ListPhases(ctx context.Context) ([]report.PhaseReport, error) {
	query, args, err := qb.Select(phaseReportColumns).From("phase_reports").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list phase reports query: %w", err)
	}

	var rows []phaseReportTableModel
	if err := sqlx.SelectContext(ctx, r.exec, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list phase reports: %w", err)
	}

	out := make([]report.PhaseReport, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Phase.Order() < out[j].Phase.Order()
	})
	return out, nil
}
