package httpapi

import (
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/standing"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

type teamDTO struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nombre"`
	Country      string    `json:"pais"`
	Group        string    `json:"grupo"`
	Points       int       `json:"puntos"`
	GoalsFor     int       `json:"goles_a_favor"`
	GoalsAgainst int       `json:"goles_en_contra"`
	YellowCards  int       `json:"tarjetas_amarillas"`
	RedCards     int       `json:"tarjetas_rojas"`
	Corners      int       `json:"tiros_esquina"`
	FreeKicks    int       `json:"tiros_libres"`
	Fouls        int       `json:"faltas"`
	Offsides     int       `json:"fueras_de_juego"`
	Passes       int       `json:"pases"`
	LogoURL      string    `json:"logo_url,omitempty"`
	Active       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type matchDTO struct {
	ID              int64     `json:"id"`
	HomeTeamID      int64     `json:"equipo_local_id"`
	AwayTeamID      int64     `json:"equipo_visitante_id"`
	HomeGoals       int       `json:"goles_local"`
	AwayGoals       int       `json:"goles_visitante"`
	HomeYellowCards int       `json:"tarjetas_amarillas_local"`
	AwayYellowCards int       `json:"tarjetas_amarillas_visitante"`
	HomeRedCards    int       `json:"tarjetas_rojas_local"`
	AwayRedCards    int       `json:"tarjetas_rojas_visitante"`
	HomeCorners     int       `json:"tiros_esquina_local"`
	AwayCorners     int       `json:"tiros_esquina_visitante"`
	HomeFreeKicks   int       `json:"tiros_libres_local"`
	AwayFreeKicks   int       `json:"tiros_libres_visitante"`
	HomeFouls       int       `json:"faltas_local"`
	AwayFouls       int       `json:"faltas_visitante"`
	HomeOffsides    int       `json:"fueras_de_juego_local"`
	AwayOffsides    int       `json:"fueras_de_juego_visitante"`
	HomePasses      int       `json:"pases_local"`
	AwayPasses      int       `json:"pases_visitante"`
	Phase           string    `json:"fase"`
	PlayedOn        string    `json:"fecha,omitempty"`
	Active          bool      `json:"activo"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type countryReportDTO struct {
	Country         string    `json:"pais"`
	TotalTeams      int       `json:"total_equipos"`
	TotalPoints     int       `json:"total_puntos"`
	AvgGoalsFor     float64   `json:"promedio_goles_favor"`
	AvgGoalsAgainst float64   `json:"promedio_goles_contra"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type phaseReportDTO struct {
	Phase            string    `json:"fase"`
	TotalMatches     int       `json:"total_partidos"`
	TotalGoals       int       `json:"total_goles"`
	AvgGoalsPerMatch float64   `json:"promedio_goles_por_partido"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type standingGroupDTO struct {
	Group string           `json:"grupo"`
	Rows  []standingRowDTO `json:"posiciones"`
}

type standingRowDTO struct {
	Position       int    `json:"posicion"`
	TeamID         int64  `json:"equipo_id"`
	TeamName       string `json:"equipo"`
	Country        string `json:"pais"`
	Played         int    `json:"partidos_jugados"`
	Won            int    `json:"ganados"`
	Drawn          int    `json:"empatados"`
	Lost           int    `json:"perdidos"`
	GoalsFor       int    `json:"goles_a_favor"`
	GoalsAgainst   int    `json:"goles_en_contra"`
	GoalDifference int    `json:"diferencia_goles"`
	Points         int    `json:"puntos"`
}

type deletedDTO struct {
	OK bool `json:"ok"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:           v.ID,
		Name:         v.Name,
		Country:      string(v.Country),
		Group:        v.Group,
		Points:       v.Points,
		GoalsFor:     v.Stats.GoalsFor,
		GoalsAgainst: v.Stats.GoalsAgainst,
		YellowCards:  v.Stats.YellowCards,
		RedCards:     v.Stats.RedCards,
		Corners:      v.Stats.Corners,
		FreeKicks:    v.Stats.FreeKicks,
		Fouls:        v.Stats.Fouls,
		Offsides:     v.Stats.Offsides,
		Passes:       v.Stats.Passes,
		LogoURL:      v.LogoURL,
		Active:       v.Active,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func matchToDTO(v match.Match) matchDTO {
	out := matchDTO{
		ID:              v.ID,
		HomeTeamID:      v.HomeTeamID,
		AwayTeamID:      v.AwayTeamID,
		HomeGoals:       v.Home.Goals,
		AwayGoals:       v.Away.Goals,
		HomeYellowCards: v.Home.YellowCards,
		AwayYellowCards: v.Away.YellowCards,
		HomeRedCards:    v.Home.RedCards,
		AwayRedCards:    v.Away.RedCards,
		HomeCorners:     v.Home.Corners,
		AwayCorners:     v.Away.Corners,
		HomeFreeKicks:   v.Home.FreeKicks,
		AwayFreeKicks:   v.Away.FreeKicks,
		HomeFouls:       v.Home.Fouls,
		AwayFouls:       v.Away.Fouls,
		HomeOffsides:    v.Home.Offsides,
		AwayOffsides:    v.Away.Offsides,
		HomePasses:      v.Home.Passes,
		AwayPasses:      v.Away.Passes,
		Phase:           string(v.Phase),
		Active:          v.Active,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.PlayedOn != nil {
		out.PlayedOn = v.PlayedOn.Format(match.DateLayout)
	}
	return out
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func countryReportToDTO(v report.CountryReport) countryReportDTO {
	return countryReportDTO{
		Country:         string(v.Country),
		TotalTeams:      v.TotalTeams,
		TotalPoints:     v.TotalPoints,
		AvgGoalsFor:     v.AvgGoalsFor,
		AvgGoalsAgainst: v.AvgGoalsAgainst,
		UpdatedAt:       v.UpdatedAt,
	}
}

func phaseReportToDTO(v report.PhaseReport) phaseReportDTO {
	return phaseReportDTO{
		Phase:            string(v.Phase),
		TotalMatches:     v.TotalMatches,
		TotalGoals:       v.TotalGoals,
		AvgGoalsPerMatch: v.AvgGoalsPerMatch,
		UpdatedAt:        v.UpdatedAt,
	}
}

func standingsToDTO(groups []standing.Group) []standingGroupDTO {
	out := make([]standingGroupDTO, 0, len(groups))
	for _, g := range groups {
		rows := make([]standingRowDTO, 0, len(g.Rows))
		for _, row := range g.Rows {
			rows = append(rows, standingRowDTO{
				Position:       row.Position,
				TeamID:         row.TeamID,
				TeamName:       row.TeamName,
				Country:        string(row.Country),
				Played:         row.Played,
				Won:            row.Won,
				Drawn:          row.Drawn,
				Lost:           row.Lost,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
				Points:         row.Points,
			})
		}
		out = append(out, standingGroupDTO{Group: g.Label, Rows: rows})
	}
	return out
}
