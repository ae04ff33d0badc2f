package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/copa-admin/internal/infrastructure/repository/memory"
)

// BootstrapSeed inserts the development roster into an empty teams table.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return 0, fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()
	inserted := 0
	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (name, name_normalized, country, group_label, active, created_at, updated_at)
VALUES (:name, :name_normalized, :country, :group_label, TRUE, :now, :now)
ON CONFLICT DO NOTHING`, map[string]any{
			"name":            t.Name,
			"name_normalized": t.NormalizedName(),
			"country":         string(t.Country),
			"group_label":     t.Group,
			"now":             now,
		})
		if err != nil {
			return 0, fmt.Errorf("bind seed team %s query: %w", t.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		res, err := tx.ExecContext(ctx, sqlQuery, args...)
		if err != nil {
			return 0, fmt.Errorf("seed team %s: %w", t.Name, err)
		}
		if affected, err := res.RowsAffected(); err == nil {
			inserted += int(affected)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}
	return inserted, nil
}
