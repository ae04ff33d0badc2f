package store

import (
	"context"
	"errors"

	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/report"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
)

var (
	// ErrDuplicateName is returned when two active teams share a normalized name.
	ErrDuplicateName = errors.New("duplicate active team name")
	// ErrMissingReference is returned when a match points at an unknown team.
	ErrMissingReference = errors.New("missing referenced entity")
	// ErrOutOfRange is returned when a counter does not fit its column.
	ErrOutOfRange = errors.New("value out of range")
)

// UnitOfWork exposes repositories bound to a single transaction.
type UnitOfWork interface {
	Teams() team.Repository
	Matches() match.Repository
	Reports() report.Repository
}

// Transactor runs fn inside one transaction. A non-nil error from fn rolls
// back every write made through the unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
