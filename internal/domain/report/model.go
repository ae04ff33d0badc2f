package report

import (
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

// CountryReport aggregates the active teams of one country.
type CountryReport struct {
	Country         team.Country
	TotalTeams      int
	TotalPoints     int
	AvgGoalsFor     float64
	AvgGoalsAgainst float64
	UpdatedAt       time.Time
}

// PhaseReport aggregates the active matches of one phase.
type PhaseReport struct {
	Phase            match.Phase
	TotalMatches     int
	TotalGoals       int
	AvgGoalsPerMatch float64
	UpdatedAt        time.Time
}

// BuildCountryReport ignores inactive teams and teams from other countries.
func BuildCountryReport(country team.Country, teams []team.Team) CountryReport {
	out := CountryReport{Country: country}
	goalsFor, goalsAgainst := 0, 0
	for _, t := range teams {
		if !t.Active || t.Country != country {
			continue
		}
		out.TotalTeams++
		out.TotalPoints += t.Points
		goalsFor += t.Stats.GoalsFor
		goalsAgainst += t.Stats.GoalsAgainst
	}
	if out.TotalTeams > 0 {
		out.AvgGoalsFor = float64(goalsFor) / float64(out.TotalTeams)
		out.AvgGoalsAgainst = float64(goalsAgainst) / float64(out.TotalTeams)
	}
	return out
}

// BuildPhaseReport ignores inactive matches and matches from other phases.
func BuildPhaseReport(phase match.Phase, matches []match.Match) PhaseReport {
	out := PhaseReport{Phase: phase}
	for _, m := range matches {
		if !m.Active || m.Phase != phase {
			continue
		}
		out.TotalMatches++
		out.TotalGoals += m.TotalGoals()
	}
	if out.TotalMatches > 0 {
		out.AvgGoalsPerMatch = float64(out.TotalGoals) / float64(out.TotalMatches)
	}
	return out
}
