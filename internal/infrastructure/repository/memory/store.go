package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

type state struct {
	teams     map[int64]team.Team
	matches   map[int64]match.Match
	countries map[team.Country]report.CountryReport
	phases    map[match.Phase]report.PhaseReport
	nextTeam  int64
	nextMatch int64
}

func newState() *state {
	return &state{
		teams:     make(map[int64]team.Team),
		matches:   make(map[int64]match.Match),
		countries: make(map[team.Country]report.CountryReport),
		phases:    make(map[match.Phase]report.PhaseReport),
		nextTeam:  1,
		nextMatch: 1,
	}
}

func (s *state) clone() *state {
	out := &state{
		teams:     make(map[int64]team.Team, len(s.teams)),
		matches:   make(map[int64]match.Match, len(s.matches)),
		countries: make(map[team.Country]report.CountryReport, len(s.countries)),
		phases:    make(map[match.Phase]report.PhaseReport, len(s.phases)),
		nextTeam:  s.nextTeam,
		nextMatch: s.nextMatch,
	}
	for id, item := range s.teams {
		out.teams[id] = item
	}
	for id, item := range s.matches {
		out.matches[id] = cloneMatch(item)
	}
	for key, item := range s.countries {
		out.countries[key] = item
	}
	for key, item := range s.phases {
		out.phases[key] = item
	}
	return out
}

func cloneMatch(item match.Match) match.Match {
	if item.PlayedOn != nil {
		playedOn := *item.PlayedOn
		item.PlayedOn = &playedOn
	}
	return item
}

// Store keeps every entity in process memory. Transactions run one at a
// time against a copy of the state that replaces it only on commit.
type Store struct {
	mu    sync.Mutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// NewSeededStore returns a store preloaded with the given active teams.
func NewSeededStore(teams []team.Team) *Store {
	s := NewStore()
	for _, item := range teams {
		item.ID = s.state.nextTeam
		item.Active = true
		s.state.teams[item.ID] = item
		s.state.nextTeam++
	}
	return s
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, uow store.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(ctx, &unitOfWork{state: working}); err != nil {
		return err
	}
	s.state = working
	return nil
}

type unitOfWork struct {
	state *state
}

func (u *unitOfWork) Teams() team.Repository {
	return &teamRepository{state: u.state}
}

func (u *unitOfWork) Matches() match.Repository {
	return &matchRepository{state: u.state}
}

func (u *unitOfWork) Reports() report.Repository {
	return &reportRepository{state: u.state}
}
