package dao

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNoTransaction means a store operation ran outside an open unit of work.
// This is a programmer error, not a recoverable condition.
var ErrNoTransaction = errors.New("no open transaction")

// UnitOfWork scopes one database transaction to one logical operation. Every
// DAO bound to it reads and writes through the same transaction, so a whole
// register/fill/load/clear sequence commits or rolls back as one.
//
// A UnitOfWork is not safe for concurrent use; each in-flight request gets
// its own through repository.NewStore.
type UnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{
		db: db,
	}
}

// Open starts a transaction. Opening an already-open unit of work is a no-op.
func (u *UnitOfWork) Open() error {
	if u.tx != nil {
		return nil
	}

	tx := u.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("db.Begin -> %w", tx.Error)
	}

	u.tx = tx

	return nil
}

// Close ends the transaction, committing when commit is true and discarding
// otherwise. The transaction handle is released even when the commit or
// rollback itself fails; the first error encountered is returned.
func (u *UnitOfWork) Close(commit bool) error {
	if u.tx == nil {
		return ErrNoTransaction
	}

	var err error
	if commit {
		err = u.tx.Commit().Error
	} else {
		err = u.tx.Rollback().Error
	}

	u.tx = nil

	if err != nil {
		return fmt.Errorf("close transaction (commit=%v) -> %w", commit, err)
	}

	return nil
}

func (u *UnitOfWork) IsOpen() bool {
	return u.tx != nil
}

// Tx hands out the current transaction. DAOs call this on every operation so
// that work outside a transaction fails fast with ErrNoTransaction.
func (u *UnitOfWork) Tx() (*gorm.DB, error) {
	if u.tx == nil {
		return nil, ErrNoTransaction
	}

	return u.tx, nil
}
