package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/generator"
	"github.com/vietanh2810/familymap-api/internal/repository"
)

// AuthService serves register and login. Both issue a fresh token; register
// additionally seeds the account with DefaultGenerations of ancestors.
type AuthService struct {
	stores StoreProvider
	gen    *generator.Generator
	tokens *TokenService
}

func NewAuthService(stores StoreProvider, gen *generator.Generator, tokens *TokenService) *AuthService {
	return &AuthService{
		stores: stores,
		gen:    gen,
		tokens: tokens,
	}
}

// Register creates the user and their root person, generates the default
// ancestor tree, and logs the new user in. All writes share one transaction.
func (s *AuthService) Register(ctx context.Context, user domain.User, person domain.Person) (domain.Login, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return domain.Login{}, fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	if _, err := store.Users.FindByUsername(ctx, user.Username); err == nil {
		return domain.Login{}, ErrDuplicateUsername
	} else if !errors.Is(err, repository.ErrNotFound) {
		return domain.Login{}, fmt.Errorf("store.Users.FindByUsername -> %w", err)
	}

	person.ID = uuid.NewString()
	person.Descendant = user.Username
	user.ID = uuid.NewString()
	user.PersonID = person.ID

	if err := store.Users.Create(ctx, user); err != nil {
		return domain.Login{}, fmt.Errorf("store.Users.Create -> %w", err)
	}
	if err := store.Persons.Create(ctx, person); err != nil {
		return domain.Login{}, fmt.Errorf("store.Persons.Create -> %w", err)
	}

	if _, _, err := generateData(ctx, store, s.gen, user, DefaultGenerations); err != nil {
		return domain.Login{}, fmt.Errorf("generateData -> %w", err)
	}

	token, err := s.tokens.Issue(ctx, store, user)
	if err != nil {
		return domain.Login{}, fmt.Errorf("s.tokens.Issue -> %w", err)
	}

	if err := store.Close(true); err != nil {
		return domain.Login{}, fmt.Errorf("store.Close -> %w", err)
	}

	return domain.Login{
		AuthToken: token.Value,
		Username:  user.Username,
		PersonID:  person.ID,
	}, nil
}

// Login checks the credentials and issues a new token; prior tokens stay
// valid.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Login, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return domain.Login{}, fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	user, err := store.Users.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Login{}, ErrInvalidCredentials
		}

		return domain.Login{}, fmt.Errorf("store.Users.FindByCredentials -> %w", err)
	}

	token, err := s.tokens.Issue(ctx, store, user)
	if err != nil {
		return domain.Login{}, fmt.Errorf("s.tokens.Issue -> %w", err)
	}

	if err := store.Close(true); err != nil {
		return domain.Login{}, fmt.Errorf("store.Close -> %w", err)
	}

	return domain.Login{
		AuthToken: token.Value,
		Username:  user.Username,
		PersonID:  user.PersonID,
	}, nil
}
