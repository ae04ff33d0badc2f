package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

func TestReportService_RebuildAllCoversEveryCountryAndPhase(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Cerro Largo", team.CountryUruguay)
	b := f.createTeam(t, "Defensor Sporting", team.CountryUruguay)
	f.createMatch(t, a.ID, b.ID, 4, 2)

	result, err := f.reports.RebuildAll(t.Context())
	if err != nil {
		t.Fatalf("rebuild all: %v", err)
	}
	if result.SuccessCount != len(team.Countries())+len(match.Phases()) || result.FailedCount != 0 {
		t.Fatalf("unexpected rebuild counts: %+v", result)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("unexpected worker count: %d", result.WorkerCount)
	}

	countries, err := f.reports.ListCountries(t.Context())
	if err != nil {
		t.Fatalf("list countries: %v", err)
	}
	if len(countries) != 10 {
		t.Fatalf("expected 10 country rows, got %d", len(countries))
	}
	if countries[0].Country != team.CountryArgentina {
		t.Fatalf("expected rows in country order, got %s first", countries[0].Country)
	}

	phases, err := f.reports.ListPhases(t.Context())
	if err != nil {
		t.Fatalf("list phases: %v", err)
	}
	if len(phases) != 7 || phases[0].Phase != match.PhasePlayOff || phases[6].Phase != match.PhaseFinal {
		t.Fatalf("unexpected phase rows: %+v", phases)
	}
	for _, row := range phases {
		if row.Phase == match.PhaseGroups && (row.TotalGoals != 6 || row.AvgGoalsPerMatch != 6) {
			t.Fatalf("unexpected groups row: %+v", row)
		}
	}
}

func TestReportService_GetGeneratesMissingRow(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)

	row, err := f.reports.GetPhase(t.Context(), match.PhaseSemifinal)
	if err != nil {
		t.Fatalf("get phase: %v", err)
	}
	if row.Phase != match.PhaseSemifinal || row.TotalMatches != 0 || row.AvgGoalsPerMatch != 0 {
		t.Fatalf("unexpected generated row: %+v", row)
	}

	phases, err := f.reports.ListPhases(t.Context())
	if err != nil {
		t.Fatalf("list phases: %v", err)
	}
	if len(phases) != 1 {
		t.Fatalf("expected generated row to be stored, got %d rows", len(phases))
	}

	if _, err := f.reports.GetCountry(t.Context(), team.Country("Mexico")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReportService_StandingsByGroup(t *testing.T) {
	t.Parallel()

	f := newLifecycleFixture(t)
	a := f.createTeam(t, "Junior", team.CountryColombia)
	b := f.createTeam(t, "América de Cali", team.CountryColombia)
	f.createMatch(t, b.ID, a.ID, 0, 2)

	groups, err := f.reports.Standings(t.Context(), "a")
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(groups) != 1 || len(groups[0].Rows) != 2 {
		t.Fatalf("unexpected standings: %+v", groups)
	}
	leader := groups[0].Rows[0]
	if leader.TeamID != a.ID || leader.Points != 3 || leader.GoalDifference != 2 {
		t.Fatalf("unexpected leader: %+v", leader)
	}

	if _, err := f.reports.Standings(t.Context(), "Z"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty group, got %v", err)
	}
}
