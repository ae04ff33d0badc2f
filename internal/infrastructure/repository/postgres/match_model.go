package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
)

const matchColumns = "id, home_team_id, away_team_id, " +
	"home_goals, home_yellow_cards, home_red_cards, home_corners, home_free_kicks, home_fouls, home_offsides, home_passes, " +
	"away_goals, away_yellow_cards, away_red_cards, away_corners, away_free_kicks, away_fouls, away_offsides, away_passes, " +
	"phase, played_on, active, created_at, updated_at"

type matchTableModel struct {
	ID              int64        `db:"id"`
	HomeTeamID      int64        `db:"home_team_id"`
	AwayTeamID      int64        `db:"away_team_id"`
	HomeGoals       int          `db:"home_goals"`
	HomeYellowCards int          `db:"home_yellow_cards"`
	HomeRedCards    int          `db:"home_red_cards"`
	HomeCorners     int          `db:"home_corners"`
	HomeFreeKicks   int          `db:"home_free_kicks"`
	HomeFouls       int          `db:"home_fouls"`
	HomeOffsides    int          `db:"home_offsides"`
	HomePasses      int          `db:"home_passes"`
	AwayGoals       int          `db:"away_goals"`
	AwayYellowCards int          `db:"away_yellow_cards"`
	AwayRedCards    int          `db:"away_red_cards"`
	AwayCorners     int          `db:"away_corners"`
	AwayFreeKicks   int          `db:"away_free_kicks"`
	AwayFouls       int          `db:"away_fouls"`
	AwayOffsides    int          `db:"away_offsides"`
	AwayPasses      int          `db:"away_passes"`
	Phase           string       `db:"phase"`
	PlayedOn        sql.NullTime `db:"played_on"`
	Active          bool         `db:"active"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

type matchInsertModel struct {
	HomeTeamID      int64        `db:"home_team_id"`
	AwayTeamID      int64        `db:"away_team_id"`
	HomeGoals       int          `db:"home_goals"`
	HomeYellowCards int          `db:"home_yellow_cards"`
	HomeRedCards    int          `db:"home_red_cards"`
	HomeCorners     int          `db:"home_corners"`
	HomeFreeKicks   int          `db:"home_free_kicks"`
	HomeFouls       int          `db:"home_fouls"`
	HomeOffsides    int          `db:"home_offsides"`
	HomePasses      int          `db:"home_passes"`
	AwayGoals       int          `db:"away_goals"`
	AwayYellowCards int          `db:"away_yellow_cards"`
	AwayRedCards    int          `db:"away_red_cards"`
	AwayCorners     int          `db:"away_corners"`
	AwayFreeKicks   int          `db:"away_free_kicks"`
	AwayFouls       int          `db:"away_fouls"`
	AwayOffsides    int          `db:"away_offsides"`
	AwayPasses      int          `db:"away_passes"`
	Phase           string       `db:"phase"`
	PlayedOn        sql.NullTime `db:"played_on"`
	Active          bool         `db:"active"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

func matchInsertFromDomain(item match.Match) matchInsertModel {
	return matchInsertModel{
		HomeTeamID:      item.HomeTeamID,
		AwayTeamID:      item.AwayTeamID,
		HomeGoals:       item.Home.Goals,
		HomeYellowCards: item.Home.YellowCards,
		HomeRedCards:    item.Home.RedCards,
		HomeCorners:     item.Home.Corners,
		HomeFreeKicks:   item.Home.FreeKicks,
		HomeFouls:       item.Home.Fouls,
		HomeOffsides:    item.Home.Offsides,
		HomePasses:      item.Home.Passes,
		AwayGoals:       item.Away.Goals,
		AwayYellowCards: item.Away.YellowCards,
		AwayRedCards:    item.Away.RedCards,
		AwayCorners:     item.Away.Corners,
		AwayFreeKicks:   item.Away.FreeKicks,
		AwayFouls:       item.Away.Fouls,
		AwayOffsides:    item.Away.Offsides,
		AwayPasses:      item.Away.Passes,
		Phase:           string(item.Phase),
		PlayedOn:        toNullTime(item.PlayedOn),
		Active:          item.Active,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		Home: match.SideStats{
			Goals:       m.HomeGoals,
			YellowCards: m.HomeYellowCards,
			RedCards:    m.HomeRedCards,
			Corners:     m.HomeCorners,
			FreeKicks:   m.HomeFreeKicks,
			Fouls:       m.HomeFouls,
			Offsides:    m.HomeOffsides,
			Passes:      m.HomePasses,
		},
		Away: match.SideStats{
			Goals:       m.AwayGoals,
			YellowCards: m.AwayYellowCards,
			RedCards:    m.AwayRedCards,
			Corners:     m.AwayCorners,
			FreeKicks:   m.AwayFreeKicks,
			Fouls:       m.AwayFouls,
			Offsides:    m.AwayOffsides,
			Passes:      m.AwayPasses,
		},
		Phase:     match.Phase(m.Phase),
		PlayedOn:  nullableDate(m.PlayedOn),
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
