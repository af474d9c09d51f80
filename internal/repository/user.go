package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/repository/dao"
)

type UserRepository struct {
	dao *dao.UserDAO
}

func NewUserRepository(dao *dao.UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	err := r.dao.Insert(ctx, dao.User{
		UID:      user.ID,
		PersonID: user.PersonID,
		Username: user.Username,
		Password: user.Password,
		Email:    user.Email,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, uid string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, uid)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string) (domain.User, error) {
	found, err := r.dao.FindByCredentials(ctx, username, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByCredentials -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.UID,
		PersonID: u.PersonID,
		Username: u.Username,
		Password: u.Password,
		Email:    u.Email,
	}
}
