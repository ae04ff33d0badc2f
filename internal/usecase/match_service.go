package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	"github.com/riskibarqy/copa-admin/internal/platform/logging"
)

type CreateMatchInput struct {
	HomeTeamID int64
	AwayTeamID int64
	Home       match.SideStats
	Away       match.SideStats
	Phase      match.Phase
	PlayedOn   *time.Time
}

// SideStatsPatch carries the counters of one side a caller wants to change.
type SideStatsPatch struct {
	Goals       *int
	YellowCards *int
	RedCards    *int
	Corners     *int
	FreeKicks   *int
	Fouls       *int
	Offsides    *int
	Passes      *int
}

func (p SideStatsPatch) empty() bool {
	return p.Goals == nil && p.YellowCards == nil && p.RedCards == nil && p.Corners == nil &&
		p.FreeKicks == nil && p.Fouls == nil && p.Offsides == nil && p.Passes == nil
}

func (p SideStatsPatch) apply(s match.SideStats) match.SideStats {
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.Goals, p.Goals)
	set(&s.YellowCards, p.YellowCards)
	set(&s.RedCards, p.RedCards)
	set(&s.Corners, p.Corners)
	set(&s.FreeKicks, p.FreeKicks)
	set(&s.Fouls, p.Fouls)
	set(&s.Offsides, p.Offsides)
	set(&s.Passes, p.Passes)
	return s
}

// UpdateMatchInput lists the mutable match fields. Teams cannot be swapped
// and an update never moves team points.
type UpdateMatchInput struct {
	Home     SideStatsPatch
	Away     SideStatsPatch
	Phase    *match.Phase
	PlayedOn *time.Time
}

func (in UpdateMatchInput) empty() bool {
	return in.Home.empty() && in.Away.empty() && in.Phase == nil && in.PlayedOn == nil
}

type MatchService struct {
	tx     store.Transactor
	logger *logging.Logger
	now    func() time.Time
}

func NewMatchService(tx store.Transactor, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		tx:     tx,
		logger: logger,
		now:    time.Now,
	}
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	now := s.now().UTC()
	item := match.Match{
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Home:       input.Home,
		Away:       input.Away,
		Phase:      input.Phase,
		PlayedOn:   input.PlayedOn,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		for _, teamID := range item.TeamIDs() {
			if _, err := loadActiveTeam(ctx, uow, teamID); err != nil {
				return err
			}
		}

		created, err := uow.Matches().Insert(ctx, item)
		if err != nil {
			return mapStoreError(err, "create match")
		}
		item = created

		refresh := newReportRefresh()
		if err := settleTeams(ctx, uow, item, pointsApply, refresh, now); err != nil {
			return err
		}
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match created",
		"match_id", item.ID,
		"home_team_id", item.HomeTeamID,
		"away_team_id", item.AwayTeamID,
		"phase", item.Phase,
	)
	return item, nil
}

func (s *MatchService) Update(ctx context.Context, id int64, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update", matchIDAttr(id))
	defer span.End()

	if input.empty() {
		return match.Match{}, fmt.Errorf("%w: no updatable fields provided", ErrInvalidInput)
	}

	now := s.now().UTC()
	var out match.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		current, err := loadActiveMatch(ctx, uow, id)
		if err != nil {
			return err
		}

		next := current
		next.Home = input.Home.apply(current.Home)
		next.Away = input.Away.apply(current.Away)
		if input.Phase != nil {
			next.Phase = *input.Phase
		}
		if input.PlayedOn != nil {
			playedOn := *input.PlayedOn
			next.PlayedOn = &playedOn
		}
		if err := next.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		next.UpdatedAt = now
		if err := uow.Matches().Update(ctx, next); err != nil {
			return fmt.Errorf("update match match_id=%d: %w", id, err)
		}
		out = next

		refresh := newReportRefresh()
		refresh.phase(current.Phase)
		if err := settleTeams(ctx, uow, next, pointsKeep, refresh, now); err != nil {
			return err
		}
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match updated", "match_id", id)
	return out, nil
}

// SoftDelete deactivates an active match and takes back the points it awarded.
func (s *MatchService) SoftDelete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SoftDelete", matchIDAttr(id))
	defer span.End()

	now := s.now().UTC()
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, err := loadActiveMatch(ctx, uow, id)
		if err != nil {
			return err
		}

		refresh := newReportRefresh()
		if _, err := setMatchActive(ctx, uow, item, false, refresh, now); err != nil {
			return err
		}
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "match deactivated", "match_id", id)
	return nil
}

// Restore reactivates an inactive match. Both teams must be active again.
func (s *MatchService) Restore(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Restore", matchIDAttr(id))
	defer span.End()

	now := s.now().UTC()
	var out match.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Matches().GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get match match_id=%d: %w", id, err)
		}
		if !exists || item.Active {
			return fmt.Errorf("%w: inactive match %d", ErrNotFound, id)
		}

		for _, teamID := range item.TeamIDs() {
			if _, err := loadActiveTeam(ctx, uow, teamID); err != nil {
				if errors.Is(err, ErrNotFound) {
					return fmt.Errorf("%w: team %d must be active before restoring match %d", ErrConflict, teamID, id)
				}
				return err
			}
		}

		refresh := newReportRefresh()
		restored, err := setMatchActive(ctx, uow, item, true, refresh, now)
		if err != nil {
			return err
		}
		out = restored
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match restored", "match_id", id)
	return out, nil
}

func (s *MatchService) Get(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get", matchIDAttr(id))
	defer span.End()

	var out match.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		item, exists, err := uow.Matches().GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get match match_id=%d: %w", id, err)
		}
		if !exists || !item.Active {
			return fmt.Errorf("%w: match %d", ErrNotFound, id)
		}
		out = item
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return out, nil
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	return s.list(ctx, match.ListFilter{Active: true})
}

func (s *MatchService) ListInactive(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListInactive")
	defer span.End()

	return s.list(ctx, match.ListFilter{Active: false})
}

func (s *MatchService) list(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	var out []match.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		items, err := uow.Matches().List(ctx, filter)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadActiveMatch(ctx context.Context, uow store.UnitOfWork, id int64) (match.Match, error) {
	item, exists, err := uow.Matches().GetByIDForUpdate(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match match_id=%d: %w", id, err)
	}
	if !exists || !item.Active {
		return match.Match{}, fmt.Errorf("%w: match %d", ErrNotFound, id)
	}
	return item, nil
}

// StatisticsService exposes the on-demand recalculation of team counters.
type StatisticsService struct {
	tx     store.Transactor
	logger *logging.Logger
	now    func() time.Time
}

func NewStatisticsService(tx store.Transactor, logger *logging.Logger) *StatisticsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatisticsService{
		tx:     tx,
		logger: logger,
		now:    time.Now,
	}
}

// Recalculate rebuilds a team's counters from its active matches. It is a
// no-op for inactive teams and running it twice changes nothing.
func (s *StatisticsService) Recalculate(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Recalculate", teamIDAttr(teamID))
	defer span.End()

	now := s.now().UTC()
	var out team.Team
	err := s.tx.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		before, exists, err := uow.Teams().GetByID(ctx, teamID)
		if err != nil {
			return fmt.Errorf("get team team_id=%d: %w", teamID, err)
		}
		if !exists {
			return fmt.Errorf("%w: team %d", ErrNotFound, teamID)
		}

		item, err := recalculateTeam(ctx, uow, teamID, now)
		if err != nil {
			return err
		}
		out = item

		if item.Stats == before.Stats {
			return nil
		}
		refresh := newReportRefresh()
		refresh.country(item.Country)
		return refresh.flush(ctx, uow, now)
	})
	if err != nil {
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team statistics recalculated", "team_id", teamID, "active", out.Active)
	return out, nil
}
