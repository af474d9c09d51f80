package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository"
)

// TokenService issues and resolves opaque session tokens. Values carry no
// structure; possession of the string is the whole credential.
type TokenService struct{}

func NewTokenService() *TokenService {
	return &TokenService{}
}

// Issue persists a fresh token bound to the user inside the caller's open
// store.
func (s *TokenService) Issue(ctx context.Context, store *repository.Store, user domain.User) (domain.AuthToken, error) {
	token := domain.AuthToken{
		Value:  uuid.NewString(),
		UserID: user.ID,
	}

	if err := store.Tokens.Create(ctx, token); err != nil {
		return domain.AuthToken{}, fmt.Errorf("store.Tokens.Create -> %w", err)
	}

	return token, nil
}

// Resolve returns the user a token belongs to. Unknown tokens fail with
// ErrInvalidToken regardless of age; tokens never expire.
func (s *TokenService) Resolve(ctx context.Context, store *repository.Store, value string) (domain.User, error) {
	token, err := store.Tokens.FindByValue(ctx, value)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}

		return domain.User{}, fmt.Errorf("store.Tokens.FindByValue -> %w", err)
	}

	user, err := store.Users.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}

		return domain.User{}, fmt.Errorf("store.Users.FindByID -> %w", err)
	}

	return user, nil
}
