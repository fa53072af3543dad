package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	ID              uint      `gorm:"primaryKey"`
	FirstName       string    `gorm:"not null"`
	LastName        string    `gorm:"not null"`
	PhoneNumber     string    `gorm:"not null"`
	Email           string    `gorm:"not null"`
	Message         string    `gorm:"not null"`
	GuestAmount     int       `gorm:"not null"`
	ReservationDate time.Time `gorm:"not null"`
}

func (Reservation) TableName() string {
	return "reservation"
}

type ReservationDAO struct {
	db *gorm.DB
}

func NewReservationDAO(db *gorm.DB) *ReservationDAO {
	return &ReservationDAO{
		db: db,
	}
}

// FindAll returns reservations in chronological order, soonest first.
func (d *ReservationDAO) FindAll(ctx context.Context) ([]Reservation, error) {
	var reservations []Reservation

	result := d.db.WithContext(ctx).Order("reservation_date ASC").Find(&reservations)
	if result.Error != nil {
		return nil, result.Error
	}

	return reservations, nil
}

func (d *ReservationDAO) Insert(ctx context.Context, reservation Reservation) error {
	result := d.db.WithContext(ctx).Create(&reservation)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (d *ReservationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (d *ReservationDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Reservation{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
