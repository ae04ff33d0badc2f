package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	qb "github.com/riskibarqy/copa-admin/internal/platform/querybuilder"
)

type TeamRepository struct {
	exec sqlx.ExtContext
}

func NewTeamRepository(exec sqlx.ExtContext) *TeamRepository {
	return &TeamRepository{exec: exec}
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamInsertFromDomain(item), "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var id int64
	if err := sqlx.GetContext(ctx, r.exec, &id, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", mapWriteError(err))
	}

	item.ID = id
	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	query, args, err := qb.Update("teams").
		SetModel(teamInsertFromDomain(item), "created_at").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	res, err := r.exec.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update team: %w", mapWriteError(err))
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update team: team %d does not exist", item.ID)
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.get(ctx, id, "")
}

func (r *TeamRepository) GetByIDForUpdate(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *TeamRepository) FindActiveByNormalizedName(ctx context.Context, normalized string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns).From("teams").
		Where(
			qb.Eq("name_normalized", normalized),
			qb.Eq("active", true),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build find team by name query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.exec, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("find team by name: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	conditions := []qb.Condition{qb.Eq("active", filter.Active)}
	if filter.Country != "" {
		conditions = append(conditions, qb.Eq("country", string(filter.Country)))
	}

	query, args, err := qb.Select(teamColumns).From("teams").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, r.exec, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) get(ctx context.Context, id int64, suffix string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns).From("teams").
		Where(qb.Eq("id", id)).
		Suffix(suffix).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := sqlx.GetContext(ctx, r.exec, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return row.toDomain(), true, nil
}
