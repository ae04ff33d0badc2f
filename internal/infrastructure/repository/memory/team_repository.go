package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

type teamRepository struct {
	state *state
}

func (r *teamRepository) Insert(_ context.Context, item team.Team) (team.Team, error) {
	if err := r.checkUniqueName(item); err != nil {
		return team.Team{}, err
	}

	item.ID = r.state.nextTeam
	r.state.nextTeam++
	r.state.teams[item.ID] = item
	return item, nil
}

func (r *teamRepository) Update(_ context.Context, item team.Team) error {
	if _, ok := r.state.teams[item.ID]; !ok {
		return fmt.Errorf("team %d does not exist", item.ID)
	}
	if err := r.checkUniqueName(item); err != nil {
		return err
	}

	r.state.teams[item.ID] = item
	return nil
}

func (r *teamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	item, ok := r.state.teams[id]
	return item, ok, nil
}

func (r *teamRepository) GetByIDForUpdate(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.GetByID(ctx, id)
}

func (r *teamRepository) FindActiveByNormalizedName(_ context.Context, normalized string) (team.Team, bool, error) {
	for _, item := range r.sorted() {
		if item.Active && item.NormalizedName() == normalized {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *teamRepository) List(_ context.Context, filter team.ListFilter) ([]team.Team, error) {
	out := make([]team.Team, 0, len(r.state.teams))
	for _, item := range r.sorted() {
		if item.Active != filter.Active {
			continue
		}
		if filter.Country != "" && item.Country != filter.Country {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// checkUniqueName mirrors the partial unique index on active team names.
func (r *teamRepository) checkUniqueName(item team.Team) error {
	if !item.Active {
		return nil
	}
	normalized := item.NormalizedName()
	for id, existing := range r.state.teams {
		if id != item.ID && existing.Active && existing.NormalizedName() == normalized {
			return fmt.Errorf("%w: %q", store.ErrDuplicateName, item.Name)
		}
	}
	return nil
}

func (r *teamRepository) sorted() []team.Team {
	out := make([]team.Team, 0, len(r.state.teams))
	for _, item := range r.state.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
