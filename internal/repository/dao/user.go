package dao

import (
	"context"
	"fmt"
)

type User struct {
	UID      string `gorm:"column:uid;primaryKey"`
	PersonID string `gorm:"column:pid"`
	Username string `gorm:"column:username;unique;not null"`
	Password string `gorm:"column:pwd;not null"`
	Email    string `gorm:"column:email;unique;not null"`
}

func (User) TableName() string {
	return "users"
}

type UserDAO struct {
	uow *UnitOfWork
}

func NewUserDAO(uow *UnitOfWork) *UserDAO {
	return &UserDAO{
		uow: uow,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
		return fmt.Errorf("tx.Create -> %w", translate(err))
	}

	return nil
}

func (d *UserDAO) FindByID(ctx context.Context, uid string) (User, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return User{}, err
	}

	var user User
	if err := tx.WithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		return User{}, fmt.Errorf("tx.First -> %w", translate(err))
	}

	return user, nil
}

func (d *UserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return User{}, err
	}

	var user User
	if err := tx.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return User{}, fmt.Errorf("tx.First -> %w", translate(err))
	}

	return user, nil
}

// FindByCredentials matches username and password verbatim; there is no
// hashing in this service.
func (d *UserDAO) FindByCredentials(ctx context.Context, username, password string) (User, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return User{}, err
	}

	var user User
	err = tx.WithContext(ctx).
		First(&user, "username = ? AND pwd = ?", username, password).Error
	if err != nil {
		return User{}, fmt.Errorf("tx.First -> %w", translate(err))
	}

	return user, nil
}
