package postgres

import (
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

const (
	countryReportColumns = "country, total_teams, total_points, avg_goals_for, avg_goals_against, updated_at"
	phaseReportColumns   = "phase, total_matches, total_goals, avg_goals_per_match, updated_at"
)

type countryReportTableModel struct {
	Country         string    `db:"country"`
	TotalTeams      int       `db:"total_teams"`
	TotalPoints     int       `db:"total_points"`
	AvgGoalsFor     float64   `db:"avg_goals_for"`
	AvgGoalsAgainst float64   `db:"avg_goals_against"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func countryReportFromDomain(item report.CountryReport) countryReportTableModel {
	return countryReportTableModel{
		Country:         string(item.Country),
		TotalTeams:      item.TotalTeams,
		TotalPoints:     item.TotalPoints,
		AvgGoalsFor:     item.AvgGoalsFor,
		AvgGoalsAgainst: item.AvgGoalsAgainst,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (m countryReportTableModel) toDomain() report.CountryReport {
	return report.CountryReport{
		Country:         team.Country(m.Country),
		TotalTeams:      m.TotalTeams,
		TotalPoints:     m.TotalPoints,
		AvgGoalsFor:     m.AvgGoalsFor,
		AvgGoalsAgainst: m.AvgGoalsAgainst,
		UpdatedAt:       m.UpdatedAt,
	}
}

type phaseReportTableModel struct {
	Phase            string    `db:"phase"`
	TotalMatches     int       `db:"total_matches"`
	TotalGoals       int       `db:"total_goals"`
	AvgGoalsPerMatch float64   `db:"avg_goals_per_match"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func phaseReportFromDomain(item report.PhaseReport) phaseReportTableModel {
	return phaseReportTableModel{
		Phase:            string(item.Phase),
		TotalMatches:     item.TotalMatches,
		TotalGoals:       item.TotalGoals,
		AvgGoalsPerMatch: item.AvgGoalsPerMatch,
		UpdatedAt:        item.UpdatedAt,
	}
}

func (m phaseReportTableModel) toDomain() report.PhaseReport {
	return report.PhaseReport{
		Phase:            match.Phase(m.Phase),
		TotalMatches:     m.TotalMatches,
		TotalGoals:       m.TotalGoals,
		AvgGoalsPerMatch: m.AvgGoalsPerMatch,
		UpdatedAt:        m.UpdatedAt,
	}
}
