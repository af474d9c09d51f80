package dao

import (
	"context"
	"fmt"
)

// Person row. The father/mother/spouse columns are plain indexed ids rather
// than enforced foreign keys: the generator discovers ancestors top-down and
// retrofits the root's links after the subtree exists. Ownership is a real
// constraint; persons insert after their user.
type Person struct {
	PID        string `gorm:"column:pid;primaryKey"`
	Descendant string `gorm:"column:descendant;index;not null"`
	FirstName  string `gorm:"column:name_first;not null"`
	LastName   string `gorm:"column:name_last;not null"`
	Gender     string `gorm:"column:gender;not null;check:gender IN ('m','f')"`
	FatherID   string `gorm:"column:father_id"`
	MotherID   string `gorm:"column:mother_id"`
	SpouseID   string `gorm:"column:spouse_id"`

	Owner User `gorm:"foreignKey:Descendant;references:Username"`
}

func (Person) TableName() string {
	return "persons"
}

type PersonDAO struct {
	uow *UnitOfWork
}

func NewPersonDAO(uow *UnitOfWork) *PersonDAO {
	return &PersonDAO{
		uow: uow,
	}
}

func (d *PersonDAO) Insert(ctx context.Context, person Person) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	if err := tx.WithContext(ctx).Create(&person).Error; err != nil {
		return fmt.Errorf("tx.Create -> %w", translate(err))
	}

	return nil
}

func (d *PersonDAO) FindByID(ctx context.Context, pid string) (Person, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return Person{}, err
	}

	var person Person
	if err := tx.WithContext(ctx).First(&person, "pid = ?", pid).Error; err != nil {
		return Person{}, fmt.Errorf("tx.First -> %w", translate(err))
	}

	return person, nil
}

// FindByDescendant returns every person owned by the username. Order carries
// no meaning.
func (d *PersonDAO) FindByDescendant(ctx context.Context, username string) ([]Person, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return nil, err
	}

	var persons []Person
	if err := tx.WithContext(ctx).Where("descendant = ?", username).Find(&persons).Error; err != nil {
		return nil, fmt.Errorf("tx.Find -> %w", translate(err))
	}

	return persons, nil
}

// UpdateLinks rewrites only the father/mother/spouse ids of an existing row.
// Used to retrofit the root person once its generated relatives have ids.
func (d *PersonDAO) UpdateLinks(ctx context.Context, person Person) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	result := tx.WithContext(ctx).
		Model(&Person{}).
		Where("pid = ?", person.PID).
		Select("father_id", "mother_id", "spouse_id").
		Updates(Person{
			FatherID: person.FatherID,
			MotherID: person.MotherID,
			SpouseID: person.SpouseID,
		})
	if result.Error != nil {
		return fmt.Errorf("tx.Updates -> %w", translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteByDescendant removes every person owned by the username except the
// one with exceptPID. Pass an empty exceptPID to delete all of them.
func (d *PersonDAO) DeleteByDescendant(ctx context.Context, username, exceptPID string) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	query := tx.WithContext(ctx).Where("descendant = ?", username)
	if exceptPID != "" {
		query = query.Where("pid <> ?", exceptPID)
	}

	if err := query.Delete(&Person{}).Error; err != nil {
		return fmt.Errorf("tx.Delete -> %w", translate(err))
	}

	return nil
}
