package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
)

type matchRepository struct {
	state *state
}

func (r *matchRepository) Insert(_ context.Context, item match.Match) (match.Match, error) {
	for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
		if _, ok := r.state.teams[teamID]; !ok {
			return match.Match{}, fmt.Errorf("%w: team %d", store.ErrMissingReference, teamID)
		}
	}

	item.ID = r.state.nextMatch
	r.state.nextMatch++
	r.state.matches[item.ID] = cloneMatch(item)
	return cloneMatch(item), nil
}

func (r *matchRepository) Update(_ context.Context, item match.Match) error {
	current, ok := r.state.matches[item.ID]
	if !ok {
		return fmt.Errorf("match %d does not exist", item.ID)
	}
	if current.HomeTeamID != item.HomeTeamID || current.AwayTeamID != item.AwayTeamID {
		return fmt.Errorf("match %d team references are immutable", item.ID)
	}

	r.state.matches[item.ID] = cloneMatch(item)
	return nil
}

func (r *matchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	item, ok := r.state.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(item), true, nil
}

func (r *matchRepository) GetByIDForUpdate(ctx context.Context, id int64) (match.Match, bool, error) {
	return r.GetByID(ctx, id)
}

func (r *matchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	out := make([]match.Match, 0, len(r.state.matches))
	for _, item := range r.state.matches {
		if item.Active != filter.Active {
			continue
		}
		if filter.TeamID != 0 && !item.Involves(filter.TeamID) {
			continue
		}
		if filter.Phase != "" && item.Phase != filter.Phase {
			continue
		}
		out = append(out, cloneMatch(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
