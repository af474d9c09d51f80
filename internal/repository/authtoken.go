package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository/dao"
)

type AuthTokenRepository struct {
	dao *dao.AuthTokenDAO
}

func NewAuthTokenRepository(dao *dao.AuthTokenDAO) *AuthTokenRepository {
	return &AuthTokenRepository{
		dao: dao,
	}
}

func (r *AuthTokenRepository) Create(ctx context.Context, token domain.AuthToken) error {
	err := r.dao.Insert(ctx, dao.AuthToken{
		Value: token.Value,
		UID:   token.UserID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

func (r *AuthTokenRepository) FindByValue(ctx context.Context, value string) (domain.AuthToken, error) {
	found, err := r.dao.FindByValue(ctx, value)
	if err != nil {
		return domain.AuthToken{}, fmt.Errorf("r.dao.FindByValue -> %w", err)
	}

	return domain.AuthToken{
		Value:  found.Value,
		UserID: found.UID,
	}, nil
}
