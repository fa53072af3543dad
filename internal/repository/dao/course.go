package dao

import (
	"context"

	"gorm.io/gorm"
)

type Course struct {
	ID           uint   `gorm:"primaryKey"`
	CourseMenuID uint   `gorm:"not null"`
	Name         string `gorm:"not null"`
	Type         string `gorm:"not null"`
}

func (Course) TableName() string {
	return "course"
}

type CourseDAO struct {
	db *gorm.DB
}

func NewCourseDAO(db *gorm.DB) *CourseDAO {
	return &CourseDAO{
		db: db,
	}
}

func (d *CourseDAO) FindAllByCourseMenuID(ctx context.Context, courseMenuID uint) ([]Course, error) {
	var courses []Course

	result := d.db.WithContext(ctx).Where("course_menu_id = ?", courseMenuID).Order("id ASC").Find(&courses)
	if result.Error != nil {
		return nil, result.Error
	}

	return courses, nil
}

func (d *CourseDAO) Insert(ctx context.Context, course Course) error {
	result := d.db.WithContext(ctx).Create(&course)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (d *CourseDAO) Update(ctx context.Context, course Course) error {
	result := d.db.WithContext(ctx).Model(&Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
		"name": course.Name,
		"type": course.Type,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (d *CourseDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Course{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (d *CourseDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Course{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
