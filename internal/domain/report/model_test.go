package report

import (
	"testing"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

func TestBuildCountryReport(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, Country: team.CountryColombia, Active: true, Points: 3, Stats: team.Stats{GoalsFor: 2, GoalsAgainst: 1}},
		{ID: 2, Country: team.CountryColombia, Active: true, Points: 0, Stats: team.Stats{GoalsFor: 1, GoalsAgainst: 2}},
		{ID: 3, Country: team.CountryColombia, Active: false, Points: 9, Stats: team.Stats{GoalsFor: 9}},
		{ID: 4, Country: team.CountryChile, Active: true, Points: 6},
	}

	got := BuildCountryReport(team.CountryColombia, teams)
	if got.TotalTeams != 2 || got.TotalPoints != 3 {
		t.Fatalf("unexpected totals: teams=%d points=%d", got.TotalTeams, got.TotalPoints)
	}
	if got.AvgGoalsFor != 1.5 || got.AvgGoalsAgainst != 1.5 {
		t.Fatalf("unexpected averages: for=%v against=%v", got.AvgGoalsFor, got.AvgGoalsAgainst)
	}

	empty := BuildCountryReport(team.CountryBolivia, teams)
	if empty.TotalTeams != 0 || empty.AvgGoalsFor != 0 || empty.AvgGoalsAgainst != 0 {
		t.Fatalf("expected zeroed report, got %+v", empty)
	}
}

func TestBuildPhaseReport(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{Phase: match.PhaseGroups, Active: true, Home: match.SideStats{Goals: 2}, Away: match.SideStats{Goals: 1}},
		{Phase: match.PhaseGroups, Active: true, Home: match.SideStats{Goals: 0}, Away: match.SideStats{Goals: 0}},
		{Phase: match.PhaseGroups, Active: false, Home: match.SideStats{Goals: 5}},
		{Phase: match.PhaseFinal, Active: true, Home: match.SideStats{Goals: 4}},
	}

	got := BuildPhaseReport(match.PhaseGroups, matches)
	if got.TotalMatches != 2 || got.TotalGoals != 3 || got.AvgGoalsPerMatch != 1.5 {
		t.Fatalf("unexpected phase report: %+v", got)
	}
}
