package dao

import (
	"context"
	"fmt"
)

type AuthToken struct {
	Value string `gorm:"column:value;primaryKey"`
	UID   string `gorm:"column:uid;index;not null"`

	User User `gorm:"foreignKey:UID;references:UID"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}

type AuthTokenDAO struct {
	uow *UnitOfWork
}

func NewAuthTokenDAO(uow *UnitOfWork) *AuthTokenDAO {
	return &AuthTokenDAO{
		uow: uow,
	}
}

func (d *AuthTokenDAO) Insert(ctx context.Context, token AuthToken) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	if err := tx.WithContext(ctx).Create(&token).Error; err != nil {
		return fmt.Errorf("tx.Create -> %w", translate(err))
	}

	return nil
}

func (d *AuthTokenDAO) FindByValue(ctx context.Context, value string) (AuthToken, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return AuthToken{}, err
	}

	var token AuthToken
	if err := tx.WithContext(ctx).First(&token, "value = ?", value).Error; err != nil {
		return AuthToken{}, fmt.Errorf("tx.First -> %w", translate(err))
	}

	return token, nil
}
