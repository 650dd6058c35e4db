package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
)

const uniqueViolationCode = "23505"

// translate maps a driver error onto the datastore error categories. A missing
// row becomes notFound; anything unclassified becomes a Database error.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	if notFound != nil && errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return apperr.Database(err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Database(err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
