package postgres

import (
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

const teamColumns = "id, name, name_normalized, country, group_label, points, goals_for, goals_against, " +
	"yellow_cards, red_cards, corners, free_kicks, fouls, offsides, passes, logo_url, active, created_at, updated_at"

type teamTableModel struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	NameNormalized string    `db:"name_normalized"`
	Country        string    `db:"country"`
	GroupLabel     string    `db:"group_label"`
	Points         int       `db:"points"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	YellowCards    int       `db:"yellow_cards"`
	RedCards       int       `db:"red_cards"`
	Corners        int       `db:"corners"`
	FreeKicks      int       `db:"free_kicks"`
	Fouls          int       `db:"fouls"`
	Offsides       int       `db:"offsides"`
	Passes         int       `db:"passes"`
	LogoURL        string    `db:"logo_url"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type teamInsertModel struct {
	Name           string    `db:"name"`
	NameNormalized string    `db:"name_normalized"`
	Country        string    `db:"country"`
	GroupLabel     string    `db:"group_label"`
	Points         int       `db:"points"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	YellowCards    int       `db:"yellow_cards"`
	RedCards       int       `db:"red_cards"`
	Corners        int       `db:"corners"`
	FreeKicks      int       `db:"free_kicks"`
	Fouls          int       `db:"fouls"`
	Offsides       int       `db:"offsides"`
	Passes         int       `db:"passes"`
	LogoURL        string    `db:"logo_url"`
	Active         bool      `db:"active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func teamInsertFromDomain(item team.Team) teamInsertModel {
	return teamInsertModel{
		Name:           item.Name,
		NameNormalized: item.NormalizedName(),
		Country:        string(item.Country),
		GroupLabel:     item.Group,
		Points:         item.Points,
		GoalsFor:       item.Stats.GoalsFor,
		GoalsAgainst:   item.Stats.GoalsAgainst,
		YellowCards:    item.Stats.YellowCards,
		RedCards:       item.Stats.RedCards,
		Corners:        item.Stats.Corners,
		FreeKicks:      item.Stats.FreeKicks,
		Fouls:          item.Stats.Fouls,
		Offsides:       item.Stats.Offsides,
		Passes:         item.Stats.Passes,
		LogoURL:        item.LogoURL,
		Active:         item.Active,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:      m.ID,
		Name:    m.Name,
		Country: team.Country(m.Country),
		Group:   m.GroupLabel,
		Points:  m.Points,
		Stats: team.Stats{
			GoalsFor:     m.GoalsFor,
			GoalsAgainst: m.GoalsAgainst,
			YellowCards:  m.YellowCards,
			RedCards:     m.RedCards,
			Corners:      m.Corners,
			FreeKicks:    m.FreeKicks,
			Fouls:        m.Fouls,
			Offsides:     m.Offsides,
			Passes:       m.Passes,
		},
		LogoURL:   m.LogoURL,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
