package dao

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a statement targets an id that has no row.
// Update and delete report it from their affected-row count, so a row
// deleted between an existence check and the mutation still surfaces as
// not-found instead of a silent no-op.
var ErrNotFound = errors.New("record not found")

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&AdminUser{},
		&CourseMenu{},
		&Course{},
		&DrinkMenu{},
		&Drink{},
		&Reservation{},
	)
}
