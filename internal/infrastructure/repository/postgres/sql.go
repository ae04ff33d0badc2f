package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/copa-admin/internal/domain/store"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqNumericOutOfRange   = "22003"

	teamsActiveNameIndex = "teams_active_name_normalized_uidx"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// mapWriteError translates constraint and range violations into store errors.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pqUniqueViolation:
		if pqErr.Constraint == teamsActiveNameIndex {
			return fmt.Errorf("%w: %s", store.ErrDuplicateName, pqErr.Detail)
		}
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %s", store.ErrMissingReference, pqErr.Detail)
	case pqNumericOutOfRange:
		return fmt.Errorf("%w: %s", store.ErrOutOfRange, pqErr.Message)
	}
	return err
}

func nullableDate(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	out := value.Time.UTC()
	return &out
}

func toNullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
