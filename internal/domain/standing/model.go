package standing

import (
	"sort"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

// Row is a team's computed table line within its group.
type Row struct {
	TeamID         int64
	TeamName       string
	Country        team.Country
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

type Group struct {
	Label string
	Rows  []Row
}

// Compute builds group tables from active teams and active matches.
// Points here are derived from results, independent of stored team points.
func Compute(teams []team.Team, matches []match.Match) []Group {
	rows := make(map[int64]*Row, len(teams))
	groupOf := make(map[int64]string, len(teams))
	for _, t := range teams {
		if !t.Active {
			continue
		}
		rows[t.ID] = &Row{TeamID: t.ID, TeamName: t.Name, Country: t.Country}
		groupOf[t.ID] = t.Group
	}

	for _, m := range matches {
		if !m.Active {
			continue
		}
		for _, side := range []int64{m.HomeTeamID, m.AwayTeamID} {
			row, ok := rows[side]
			if !ok {
				continue
			}
			stats, _ := m.Contribution(side)
			row.Played++
			row.GoalsFor += stats.GoalsFor
			row.GoalsAgainst += stats.GoalsAgainst
			row.Points += m.PointsFor(side)
			switch {
			case stats.GoalsFor > stats.GoalsAgainst:
				row.Won++
			case stats.GoalsFor < stats.GoalsAgainst:
				row.Lost++
			default:
				row.Drawn++
			}
		}
	}

	byGroup := make(map[string][]Row)
	for id, row := range rows {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		byGroup[groupOf[id]] = append(byGroup[groupOf[id]], *row)
	}

	out := make([]Group, 0, len(byGroup))
	for label, items := range byGroup {
		sortRows(items)
		for i := range items {
			items[i].Position = i + 1
		}
		out = append(out, Group{Label: label, Rows: items})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})

	return out
}

func sortRows(items []Row) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if a.TeamName != b.TeamName {
			return a.TeamName < b.TeamName
		}
		return a.TeamID < b.TeamID
	})
}
