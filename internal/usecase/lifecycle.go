package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

// pointsDelta tells settleTeams how to treat the result points of a match.
type pointsDelta int

const (
	pointsKeep    pointsDelta = 0
	pointsApply   pointsDelta = 1
	pointsReverse pointsDelta = -1
)

// syncStats overwrites the derived counters of an active team from its
// active matches. Inactive teams keep whatever they had. Totals past
// team.MaxCounter are rejected as invalid input.
func syncStats(ctx context.Context, uow store.UnitOfWork, item *team.Team) error {
	if !item.Active {
		return nil
	}

	matches, err := uow.Matches().List(ctx, match.ListFilter{Active: true, TeamID: item.ID})
	if err != nil {
		return fmt.Errorf("list active matches team_id=%d: %w", item.ID, err)
	}
	item.Stats = match.AccumulateStats(item.ID, matches)
	if err := item.CheckCounters(); err != nil {
		return fmt.Errorf("%w: team %d: %v", ErrInvalidInput, item.ID, err)
	}
	return nil
}

func recalculateTeam(ctx context.Context, uow store.UnitOfWork, teamID int64, now time.Time) (team.Team, error) {
	item, exists, err := uow.Teams().GetByIDForUpdate(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team for recalculation team_id=%d: %w", teamID, err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}
	if !item.Active {
		return item, nil
	}

	before := item.Stats
	if err := syncStats(ctx, uow, &item); err != nil {
		return team.Team{}, err
	}
	if item.Stats == before {
		return item, nil
	}

	item.UpdatedAt = now
	if err := uow.Teams().Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update recalculated team team_id=%d: %w", teamID, err)
	}
	return item, nil
}

// settleTeams brings both teams of m in line with the current match set:
// points move by the result rule according to delta, other counters are
// recomputed from scratch. Rows are locked in ascending id order.
func settleTeams(ctx context.Context, uow store.UnitOfWork, m match.Match, delta pointsDelta, refresh *reportRefresh, now time.Time) error {
	homePoints, awayPoints := m.Points()
	sides := []struct {
		teamID int64
		points int
	}{
		{teamID: m.HomeTeamID, points: homePoints},
		{teamID: m.AwayTeamID, points: awayPoints},
	}
	if sides[1].teamID < sides[0].teamID {
		sides[0], sides[1] = sides[1], sides[0]
	}

	for _, side := range sides {
		item, exists, err := uow.Teams().GetByIDForUpdate(ctx, side.teamID)
		if err != nil {
			return fmt.Errorf("get team for settlement team_id=%d: %w", side.teamID, err)
		}
		if !exists {
			return fmt.Errorf("%w: team %d referenced by match %d", ErrNotFound, side.teamID, m.ID)
		}

		switch delta {
		case pointsApply:
			item.Points += side.points
		case pointsReverse:
			item.SubtractPoints(side.points)
		}
		if err := syncStats(ctx, uow, &item); err != nil {
			return err
		}

		item.UpdatedAt = now
		if err := uow.Teams().Update(ctx, item); err != nil {
			return mapStoreError(err, fmt.Sprintf("update settled team team_id=%d", side.teamID))
		}
		refresh.country(item.Country)
	}
	refresh.phase(m.Phase)

	return nil
}

// setMatchActive is the single Active/Inactive transition for matches.
func setMatchActive(ctx context.Context, uow store.UnitOfWork, m match.Match, active bool, refresh *reportRefresh, now time.Time) (match.Match, error) {
	if m.Active == active {
		return m, nil
	}

	m.Active = active
	m.UpdatedAt = now
	if err := uow.Matches().Update(ctx, m); err != nil {
		return match.Match{}, fmt.Errorf("update match active=%t match_id=%d: %w", active, m.ID, err)
	}

	delta := pointsReverse
	if active {
		delta = pointsApply
	}
	if err := settleTeams(ctx, uow, m, delta, refresh, now); err != nil {
		return match.Match{}, err
	}

	return m, nil
}

// reportRefresh collects the countries and phases touched by one operation.
type reportRefresh struct {
	countries map[team.Country]struct{}
	phases    map[match.Phase]struct{}
}

func newReportRefresh() *reportRefresh {
	return &reportRefresh{
		countries: make(map[team.Country]struct{}),
		phases:    make(map[match.Phase]struct{}),
	}
}

func (r *reportRefresh) country(c team.Country) {
	if c.Valid() {
		r.countries[c] = struct{}{}
	}
}

func (r *reportRefresh) phase(p match.Phase) {
	if p.Valid() {
		r.phases[p] = struct{}{}
	}
}

func (r *reportRefresh) flush(ctx context.Context, uow store.UnitOfWork, now time.Time) error {
	for _, c := range team.Countries() {
		if _, ok := r.countries[c]; !ok {
			continue
		}
		if _, err := refreshCountryReport(ctx, uow, c, now); err != nil {
			return err
		}
	}
	for _, p := range match.Phases() {
		if _, ok := r.phases[p]; !ok {
			continue
		}
		if _, err := refreshPhaseReport(ctx, uow, p, now); err != nil {
			return err
		}
	}
	return nil
}

func refreshCountryReport(ctx context.Context, uow store.UnitOfWork, country team.Country, now time.Time) (report.CountryReport, error) {
	teams, err := uow.Teams().List(ctx, team.ListFilter{Active: true, Country: country})
	if err != nil {
		return report.CountryReport{}, fmt.Errorf("list teams for country report country=%s: %w", country, err)
	}

	item := report.BuildCountryReport(country, teams)
	item.UpdatedAt = now
	if err := uow.Reports().UpsertCountry(ctx, item); err != nil {
		return report.CountryReport{}, fmt.Errorf("upsert country report country=%s: %w", country, err)
	}
	return item, nil
}

func refreshPhaseReport(ctx context.Context, uow store.UnitOfWork, phase match.Phase, now time.Time) (report.PhaseReport, error) {
	matches, err := uow.Matches().List(ctx, match.ListFilter{Active: true, Phase: phase})
	if err != nil {
		return report.PhaseReport{}, fmt.Errorf("list matches for phase report phase=%s: %w", phase, err)
	}

	item := report.BuildPhaseReport(phase, matches)
	item.UpdatedAt = now
	if err := uow.Reports().UpsertPhase(ctx, item); err != nil {
		return report.PhaseReport{}, fmt.Errorf("upsert phase report phase=%s: %w", phase, err)
	}
	return item, nil
}

func mapStoreError(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrDuplicateName):
		return fmt.Errorf("%w: %s: an active team already uses this name", ErrConflict, action)
	case errors.Is(err, store.ErrMissingReference):
		return fmt.Errorf("%w: %s: referenced team does not exist", ErrNotFound, action)
	case errors.Is(err, store.ErrOutOfRange):
		return fmt.Errorf("%w: %s: counter exceeds the maximum", ErrInvalidInput, action)
	default:
		return err
	}
}
