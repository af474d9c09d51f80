package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository"
)

// EventService serves authenticated event reads, mirroring PersonService.
type EventService struct {
	stores StoreProvider
	tokens *TokenService
}

func NewEventService(stores StoreProvider, tokens *TokenService) *EventService {
	return &EventService{
		stores: stores,
		tokens: tokens,
	}
}

// GetEvent returns a single event, enforcing that it belongs to the token's
// owner.
func (s *EventService) GetEvent(ctx context.Context, tokenValue, eventID string) (domain.Event, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return domain.Event{}, fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	user, err := s.tokens.Resolve(ctx, store, tokenValue)
	if err != nil {
		return domain.Event{}, err
	}

	event, err := store.Events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("store.Events.FindByID -> %w", err)
	}

	if event.Descendant != user.Username {
		return domain.Event{}, ErrOwnershipMismatch
	}

	if err := store.Close(true); err != nil {
		return domain.Event{}, fmt.Errorf("store.Close -> %w", err)
	}

	return event, nil
}

// ListEvents returns every event owned by the token's user.
func (s *EventService) ListEvents(ctx context.Context, tokenValue string) ([]domain.Event, error) {
	store := s.stores.NewStore()
	if err := store.Open(); err != nil {
		return nil, fmt.Errorf("store.Open -> %w", err)
	}
	defer closeOrRollback(store)

	user, err := s.tokens.Resolve(ctx, store, tokenValue)
	if err != nil {
		return nil, err
	}

	events, err := store.Events.FindByOwner(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("store.Events.FindByOwner -> %w", err)
	}

	if err := store.Close(true); err != nil {
		return nil, fmt.Errorf("store.Close -> %w", err)
	}

	return events, nil
}
