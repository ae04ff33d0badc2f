package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

// Store opens one database transaction per unit of work.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, uow store.UnitOfWork) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &unitOfWork{exec: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type unitOfWork struct {
	exec sqlx.ExtContext
}

func (u *unitOfWork) Teams() team.Repository {
	return &TeamRepository{exec: u.exec}
}

func (u *unitOfWork) Matches() match.Repository {
	return &MatchRepository{exec: u.exec}
}

func (u *unitOfWork) Reports() report.Repository {
	return &ReportRepository{exec: u.exec}
}
