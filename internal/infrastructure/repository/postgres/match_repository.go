package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/copa-admin/internal/domain/match"
	qb "github.com/riskibarqy/copa-admin/internal/platform/querybuilder"
)

type MatchRepository struct {
	exec sqlx.ExtContext
}

func NewMatchRepository(exec sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{exec: exec}
}

func (r *MatchRepository) Insert(ctx context.Context, item match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchInsertFromDomain(item), "RETURNING id")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.exec, &id, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", mapWriteError(err))
	}

	item.ID = id
	return item, nil
}

// Update never rewrites home_team_id or away_team_id.
func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		SetModel(matchInsertFromDomain(item), "home_team_id", "away_team_id", "created_at").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	res, err := r.exec.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", mapWriteError(err))
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update match: match %d does not exist", item.ID)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	return r.get(ctx, id, "")
}

func (r *MatchRepository) GetByIDForUpdate(ctx context.Context, id int64) (match.Match, bool, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	conditions := []qb.Condition{qb.Eq("active", filter.Active)}
	if filter.TeamID != 0 {
		conditions = append(conditions, qb.Or(qb.Eq("home_team_id", filter.TeamID), qb.Eq("away_team_id", filter.TeamID)))
	}
	if filter.Phase != "" {
		conditions = append(conditions, qb.Eq("phase", string(filter.Phase)))
	}

	query, args, err := qb.Select(matchColumns).From("matches").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.exec, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) get(ctx context.Context, id int64, suffix string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns).From("matches").
		Where(qb.Eq("id", id)).
		Suffix(suffix).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.exec, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return row.toDomain(), true, nil
}
