package dao

import (
	"context"

	"gorm.io/gorm"
)

type CourseMenu struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	PriceTot int    `gorm:"column:price_tot;not null"`
}

func (CourseMenu) TableName() string {
	return "course_menu"
}

type CourseMenuDAO struct {
	db *gorm.DB
}

func NewCourseMenuDAO(db *gorm.DB) *CourseMenuDAO {
	return &CourseMenuDAO{
		db: db,
	}
}

func (d *CourseMenuDAO) FindAll(ctx context.Context) ([]CourseMenu, error) {
	var menus []CourseMenu

	result := d.db.WithContext(ctx).Order("id ASC").Find(&menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

func (d *CourseMenuDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&CourseMenu{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Update rewrites every mutable column of the matching row. A map is used so
// zero values overwrite as well.
func (d *CourseMenuDAO) Update(ctx context.Context, menu CourseMenu) error {
	result := d.db.WithContext(ctx).Model(&CourseMenu{}).Where("id = ?", menu.ID).Updates(map[string]interface{}{
		"price_tot": menu.PriceTot,
		"title":     menu.Title,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
