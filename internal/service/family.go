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

// FamilyService serves the bulk data operations: fill, load and clear.
type FamilyService struct {
	stores StoreProvider
	gen    *generator.Generator
}

func NewFamilyService(stores StoreProvider, gen *generator.Generator) *FamilyService {
	return &FamilyService{
		stores: stores,
		gen:    gen,
	}
}

// Fill replaces a user's generated data with a fresh tree of the requested
// depth. The user's own root person survives the reset; everything else they
// own is deleted first.
func (s *FamilyService) Fill(ctx context.Context, username string, generations int) (string, error) {
	if generations < 0 {
		return "", ErrInvalidGenerations
	}

	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return "", fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	user, err := store.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}

		return "", fmt.Errorf("store.Users.FindByUsername -> %w", err)
	}

	if err := store.Events.DeleteByOwner(ctx, user.Username); err != nil {
		return "", fmt.Errorf("store.Events.DeleteByOwner -> %w", err)
	}
	if err := store.Persons.DeleteByOwner(ctx, user.Username, user.PersonID); err != nil {
		return "", fmt.Errorf("store.Persons.DeleteByOwner -> %w", err)
	}

	persons, events, err := generateData(ctx, store, s.gen, user, generations)
	if err != nil {
		return "", fmt.Errorf("generateData -> %w", err)
	}

	if err := store.Close(true); err != nil {
		return "", fmt.Errorf("store.Close -> %w", err)
	}

	return fmt.Sprintf("Successfully added %v persons and %v events to the database", persons, events), nil
}

// Load wipes the entire schema — every tenant, not just the uploaded ones —
// and inserts the posted users, persons and events. Incoming users get fresh
// ids; incoming events get their owner re-derived from the persons list.
func (s *FamilyService) Load(ctx context.Context, users []domain.User, persons []domain.Person, events []domain.Event) (string, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return "", fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	if err := store.Schema.Reset(ctx); err != nil {
		return "", fmt.Errorf("store.Schema.Reset -> %w", err)
	}

	for i := range users {
		users[i].ID = uuid.NewString()
	}

	owners := make(map[string]string, len(persons))
	for _, person := range persons {
		owners[person.ID] = person.Descendant
	}
	for i := range events {
		if owner, ok := owners[events[i].PersonID]; ok {
			events[i].Descendant = owner
		}
	}

	for _, user := range users {
		if err := store.Users.Create(ctx, user); err != nil {
			return "", fmt.Errorf("store.Users.Create -> %w", err)
		}
	}
	for _, person := range persons {
		if err := store.Persons.Create(ctx, person); err != nil {
			return "", fmt.Errorf("store.Persons.Create -> %w", err)
		}
	}
	for _, event := range events {
		if err := store.Events.Create(ctx, event); err != nil {
			return "", fmt.Errorf("store.Events.Create -> %w", err)
		}
	}

	if err := store.Close(true); err != nil {
		return "", fmt.Errorf("store.Close -> %w", err)
	}

	return fmt.Sprintf("Successfully added %v users, %v persons, and %v events to the database.",
		len(users), len(persons), len(events)), nil
}

// Clear drops and recreates all four tables.
func (s *FamilyService) Clear(ctx context.Context) (string, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return "", fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	if err := store.Schema.Reset(ctx); err != nil {
		return "", fmt.Errorf("store.Schema.Reset -> %w", err)
	}

	if err := store.Close(true); err != nil {
		return "", fmt.Errorf("store.Close -> %w", err)
	}

	return "Clear succeeded", nil
}
