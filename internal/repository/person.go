package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository/dao"
)

type PersonRepository struct {
	dao *dao.PersonDAO
}

func NewPersonRepository(dao *dao.PersonDAO) *PersonRepository {
	return &PersonRepository{
		dao: dao,
	}
}

func (r *PersonRepository) Create(ctx context.Context, person domain.Person) error {
	if err := r.dao.Insert(ctx, r.domainToDAO(person)); err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

func (r *PersonRepository) FindByID(ctx context.Context, pid string) (domain.Person, error) {
	found, err := r.dao.FindByID(ctx, pid)
	if err != nil {
		return domain.Person{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PersonRepository) FindByOwner(ctx context.Context, username string) ([]domain.Person, error) {
	found, err := r.dao.FindByDescendant(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDescendant -> %w", err)
	}

	persons := make([]domain.Person, 0, len(found))
	for _, p := range found {
		persons = append(persons, r.daoToDomain(p))
	}

	return persons, nil
}

func (r *PersonRepository) UpdateLinks(ctx context.Context, person domain.Person) error {
	if err := r.dao.UpdateLinks(ctx, r.domainToDAO(person)); err != nil {
		return fmt.Errorf("r.dao.UpdateLinks -> %w", err)
	}

	return nil
}

func (r *PersonRepository) DeleteByOwner(ctx context.Context, username, exceptID string) error {
	if err := r.dao.DeleteByDescendant(ctx, username, exceptID); err != nil {
		return fmt.Errorf("r.dao.DeleteByDescendant -> %w", err)
	}

	return nil
}

func (r *PersonRepository) daoToDomain(p dao.Person) domain.Person {
	return domain.Person{
		ID:         p.PID,
		Descendant: p.Descendant,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Gender:     p.Gender,
		FatherID:   p.FatherID,
		MotherID:   p.MotherID,
		SpouseID:   p.SpouseID,
	}
}

func (r *PersonRepository) domainToDAO(p domain.Person) dao.Person {
	return dao.Person{
		PID:        p.ID,
		Descendant: p.Descendant,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Gender:     p.Gender,
		FatherID:   p.FatherID,
		MotherID:   p.MotherID,
		SpouseID:   p.SpouseID,
	}
}
