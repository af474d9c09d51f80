package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/repository/dao"
)

type SchemaRepository struct {
	dao *dao.SchemaDAO
}

func NewSchemaRepository(dao *dao.SchemaDAO) *SchemaRepository {
	return &SchemaRepository{
		dao: dao,
	}
}

// Reset wipes all four tables (every tenant) by dropping and recreating them.
func (r *SchemaRepository) Reset(ctx context.Context) error {
	if err := r.dao.Reset(ctx); err != nil {
		return fmt.Errorf("r.dao.Reset -> %w", err)
	}

	return nil
}
