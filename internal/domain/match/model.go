package match

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

var (
	ErrSameTeam        = errors.New("home and away team must be different")
	ErrInvalidPhase    = errors.New("invalid phase")
	ErrInvalidDate     = errors.New("invalid match date")
	ErrNegativeCounter = errors.New("match counters cannot be negative")
	ErrCounterOverflow = errors.New("match counters exceed the maximum")
)

const (
	PointsWin  = 3
	PointsDraw = 1

	DateLayout = "2006-01-02"
)

// SideStats are the counters recorded for one side of a match.
type SideStats struct {
	Goals       int
	YellowCards int
	RedCards    int
	Corners     int
	FreeKicks   int
	Fouls       int
	Offsides    int
	Passes      int
}

func (s SideStats) exceeds(limit int) bool {
	return s.Goals > limit || s.YellowCards > limit || s.RedCards > limit || s.Corners > limit ||
		s.FreeKicks > limit || s.Fouls > limit || s.Offsides > limit || s.Passes > limit
}

func (s SideStats) hasNegative() bool {
	return s.Goals < 0 || s.YellowCards < 0 || s.RedCards < 0 || s.Corners < 0 ||
		s.FreeKicks < 0 || s.Fouls < 0 || s.Offsides < 0 || s.Passes < 0
}

type Match struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	Home       SideStats
	Away       SideStats
	Phase      Phase
	PlayedOn   *time.Time
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 || m.AwayTeamID <= 0 {
		return fmt.Errorf("match teams are required")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return ErrSameTeam
	}
	if !m.Phase.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPhase, m.Phase)
	}
	if m.Home.hasNegative() || m.Away.hasNegative() {
		return ErrNegativeCounter
	}
	if m.Home.exceeds(team.MaxCounter) || m.Away.exceeds(team.MaxCounter) {
		return fmt.Errorf("%w: limit is %d", ErrCounterOverflow, team.MaxCounter)
	}

	return nil
}

// TeamIDs returns both team ids in ascending order, the order rows are locked in.
func (m Match) TeamIDs() []int64 {
	if m.AwayTeamID < m.HomeTeamID {
		return []int64{m.AwayTeamID, m.HomeTeamID}
	}
	return []int64{m.HomeTeamID, m.AwayTeamID}
}

func (m Match) Involves(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

func (m Match) TotalGoals() int {
	return m.Home.Goals + m.Away.Goals
}

// Points applies the result rule: a win is worth three, a draw one each.
func (m Match) Points() (home, away int) {
	switch {
	case m.Home.Goals > m.Away.Goals:
		return PointsWin, 0
	case m.Away.Goals > m.Home.Goals:
		return 0, PointsWin
	default:
		return PointsDraw, PointsDraw
	}
}

// PointsFor returns the points this match grants teamID.
func (m Match) PointsFor(teamID int64) int {
	home, away := m.Points()
	switch teamID {
	case m.HomeTeamID:
		return home
	case m.AwayTeamID:
		return away
	default:
		return 0
	}
}

// OpponentOf returns the other side's team id.
func (m Match) OpponentOf(teamID int64) (int64, bool) {
	switch teamID {
	case m.HomeTeamID:
		return m.AwayTeamID, true
	case m.AwayTeamID:
		return m.HomeTeamID, true
	default:
		return 0, false
	}
}

// Contribution is what this match adds to teamID's derived stats.
func (m Match) Contribution(teamID int64) (team.Stats, bool) {
	var own, opp SideStats
	switch teamID {
	case m.HomeTeamID:
		own, opp = m.Home, m.Away
	case m.AwayTeamID:
		own, opp = m.Away, m.Home
	default:
		return team.Stats{}, false
	}

	return team.Stats{
		GoalsFor:     own.Goals,
		GoalsAgainst: opp.Goals,
		YellowCards:  own.YellowCards,
		RedCards:     own.RedCards,
		Corners:      own.Corners,
		FreeKicks:    own.FreeKicks,
		Fouls:        own.Fouls,
		Offsides:     own.Offsides,
		Passes:       own.Passes,
	}, true
}

// AccumulateStats sums the contribution of every active match of teamID.
func AccumulateStats(teamID int64, matches []Match) team.Stats {
	var out team.Stats
	for _, m := range matches {
		if !m.Active {
			continue
		}
		if c, ok := m.Contribution(teamID); ok {
			out = out.Add(c)
		}
	}
	return out
}

func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q must use YYYY-MM-DD", ErrInvalidDate, raw)
	}
	return &parsed, nil
}
