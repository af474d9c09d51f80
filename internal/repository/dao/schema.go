package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// tables lists every model in dependency order (referencing tables last).
var tables = []any{
	&User{},
	&Person{},
	&Event{},
	&AuthToken{},
}

// InitTables creates any missing tables at startup.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(tables...)
}

type SchemaDAO struct {
	uow *UnitOfWork
}

func NewSchemaDAO(uow *UnitOfWork) *SchemaDAO {
	return &SchemaDAO{
		uow: uow,
	}
}

// Reset drops and recreates all four tables inside the current transaction.
// Drop-then-create runs as one step so stale rows can never survive a reset.
func (d *SchemaDAO) Reset(ctx context.Context) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	tx = tx.WithContext(ctx)
	// Drop in reverse dependency order so referencing tables go first.
	for i := len(tables) - 1; i >= 0; i-- {
		if err := tx.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("tx.Migrator().DropTable -> %w", translate(err))
		}
	}

	if err := tx.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("tx.AutoMigrate -> %w", translate(err))
	}

	return nil
}
