package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository"
)

// PersonService serves authenticated person reads. The caller's identity
// comes from the supplied token, resolved inside the same transaction as the
// read itself.
type PersonService struct {
	stores StoreProvider
	tokens *TokenService
}

func NewPersonService(stores StoreProvider, tokens *TokenService) *PersonService {
	return &PersonService{
		stores: stores,
		tokens: tokens,
	}
}

// GetPerson returns a single person, enforcing that it belongs to the
// token's owner.
func (s *PersonService) GetPerson(ctx context.Context, tokenValue, personID string) (domain.Person, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return domain.Person{}, fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	user, err := s.tokens.Resolve(ctx, store, tokenValue)
	if err != nil {
		return domain.Person{}, err
	}

	person, err := store.Persons.FindByID(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Person{}, ErrPersonNotFound
		}

		return domain.Person{}, fmt.Errorf("store.Persons.FindByID -> %w", err)
	}

	if person.Descendant != user.Username {
		return domain.Person{}, ErrOwnershipMismatch
	}

	if err := store.Close(true); err != nil {
		return domain.Person{}, fmt.Errorf("store.Close -> %w", err)
	}

	return person, nil
}

// ListPeople returns every person owned by the token's user.
func (s *PersonService) ListPeople(ctx context.Context, tokenValue string) ([]domain.Person, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return nil, fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	user, err := s.tokens.Resolve(ctx, store, tokenValue)
	if err != nil {
		return nil, err
	}

	persons, err := store.Persons.FindByOwner(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("store.Persons.FindByOwner -> %w", err)
	}

	if err := store.Close(true); err != nil {
		return nil, fmt.Errorf("store.Close -> %w", err)
	}

	return persons, nil
}
