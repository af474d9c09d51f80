package dao

import (
	"context"
	"fmt"
)

// Event row. Events insert last, after their person and user exist.
type Event struct {
	EID        string  `gorm:"column:eid;primaryKey"`
	PersonID   string  `gorm:"column:pid;index;not null"`
	Descendant string  `gorm:"column:descendant;index;not null"`
	EventType  string  `gorm:"column:event_type;not null"`
	Latitude   float64 `gorm:"column:latitude"`
	Longitude  float64 `gorm:"column:longitude"`
	Country    string  `gorm:"column:country"`
	City       string  `gorm:"column:city"`
	Year       string  `gorm:"column:year"`

	Person Person `gorm:"foreignKey:PersonID;references:PID"`
	Owner  User   `gorm:"foreignKey:Descendant;references:Username"`
}

func (Event) TableName() string {
	return "events"
}

type EventDAO struct {
	uow *UnitOfWork
}

func NewEventDAO(uow *UnitOfWork) *EventDAO {
	return &EventDAO{
		uow: uow,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	if err := tx.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("tx.Create -> %w", translate(err))
	}

	return nil
}

func (d *EventDAO) FindByID(ctx context.Context, eid string) (Event, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return Event{}, err
	}

	var event Event
	if err := tx.WithContext(ctx).First(&event, "eid = ?", eid).Error; err != nil {
		return Event{}, fmt.Errorf("tx.First -> %w", translate(err))
	}

	return event, nil
}

func (d *EventDAO) FindByDescendant(ctx context.Context, username string) ([]Event, error) {
	tx, err := d.uow.Tx()
	if err != nil {
		return nil, err
	}

	var events []Event
	if err := tx.WithContext(ctx).Where("descendant = ?", username).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("tx.Find -> %w", translate(err))
	}

	return events, nil
}

func (d *EventDAO) DeleteByDescendant(ctx context.Context, username string) error {
	tx, err := d.uow.Tx()
	if err != nil {
		return err
	}

	if err := tx.WithContext(ctx).Where("descendant = ?", username).Delete(&Event{}).Error; err != nil {
		return fmt.Errorf("tx.Delete -> %w", translate(err))
	}

	return nil
}
