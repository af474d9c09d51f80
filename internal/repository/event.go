package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository/dao"
)

type EventRepository struct {
	dao *dao.EventDAO
}

func NewEventRepository(dao *dao.EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) error {
	if err := r.dao.Insert(ctx, r.domainToDAO(event)); err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, eid string) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, eid)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindByOwner(ctx context.Context, username string) ([]domain.Event, error) {
	found, err := r.dao.FindByDescendant(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDescendant -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) DeleteByOwner(ctx context.Context, username string) error {
	if err := r.dao.DeleteByDescendant(ctx, username); err != nil {
		return fmt.Errorf("r.dao.DeleteByDescendant -> %w", err)
	}

	return nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:         e.EID,
		PersonID:   e.PersonID,
		Descendant: e.Descendant,
		EventType:  e.EventType,
		Latitude:   e.Latitude,
		Longitude:  e.Longitude,
		Country:    e.Country,
		City:       e.City,
		Year:       e.Year,
	}
}

func (r *EventRepository) domainToDAO(e domain.Event) dao.Event {
	return dao.Event{
		EID:        e.ID,
		PersonID:   e.PersonID,
		Descendant: e.Descendant,
		EventType:  e.EventType,
		Latitude:   e.Latitude,
		Longitude:  e.Longitude,
		Country:    e.Country,
		City:       e.City,
		Year:       e.Year,
	}
}
