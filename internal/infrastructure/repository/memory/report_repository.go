package memory

import (
	"context"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

type reportRepository struct {
	state *state
}

func (r *reportRepository) UpsertCountry(_ context.Context, item report.CountryReport) error {
	r.state.countries[item.Country] = item
	return nil
}

func (r *reportRepository) GetCountry(_ context.Context, country team.Country) (report.CountryReport, bool, error) {
	item, ok := r.state.countries[country]
	return item, ok, nil
}

func (r *reportRepository) ListCountries(_ context.Context) ([]report.CountryReport, error) {
	out := make([]report.CountryReport, 0, len(r.state.countries))
	for _, country := range team.Countries() {
		if item, ok := r.state.countries[country]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *reportRepository) UpsertPhase(_ context.Context, item report.PhaseReport) error {
	r.state.phases[item.Phase] = item
	return nil
}

func (r *reportRepository) GetPhase(_ context.Context, phase match.Phase) (report.PhaseReport, bool, error) {
	item, ok := r.state.phases[phase]
	return item, ok, nil
}

func (r *reportRepository) ListPhases(_ context.Context) ([]report.PhaseReport, error) {
	out := make([]report.PhaseReport, 0, len(r.state.phases))
	for _, phase := range match.Phases() {
		if item, ok := r.state.phases[phase]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
