package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrConstraintViolation = errors.New("constraint violation")
)

// translate folds driver-specific failures into the package sentinels.
// Postgres errors are matched by SQLSTATE; the gorm translations cover the
// sqlite driver used in tests.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDuplicateKey
		case pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return ErrConstraintViolation
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConstraintViolation
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	}

	return err
}
