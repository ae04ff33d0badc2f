package report

import (
	"context"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

// Repository stores one row per country and one row per phase.
type Repository interface {
	UpsertCountry(ctx context.Context, item CountryReport) error
	GetCountry(ctx context.Context, country team.Country) (CountryReport, bool, error)
	ListCountries(ctx context.Context) ([]CountryReport, error)
	UpsertPhase(ctx context.Context, item PhaseReport) error
	GetPhase(ctx context.Context, phase match.Phase) (PhaseReport, bool, error)
	ListPhases(ctx context.Context) ([]PhaseReport, error)
}
