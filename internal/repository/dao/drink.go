package dao

import (
	"context"

	"gorm.io/gorm"
)

type Drink struct {
	ID          uint   `gorm:"primaryKey"`
	DrinkMenuID uint   `gorm:"not null"`
	Name        string `gorm:"not null"`
}

func (Drink) TableName() string {
	return "drink"
}

type DrinkDAO struct {
	db *gorm.DB
}

func NewDrinkDAO(db *gorm.DB) *DrinkDAO {
	return &DrinkDAO{
		db: db,
	}
}

func (d *DrinkDAO) FindAllByDrinkMenuID(ctx context.Context, drinkMenuID uint) ([]Drink, error) {
	var drinks []Drink

	result := d.db.WithContext(ctx).Where("drink_menu_id = ?", drinkMenuID).Order("id ASC").Find(&drinks)
	if result.Error != nil {
		return nil, result.Error
	}

	return drinks, nil
}

func (d *DrinkDAO) Insert(ctx context.Context, drink Drink) error {
	result := d.db.WithContext(ctx).Create(&drink)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (d *DrinkDAO) Update(ctx context.Context, drink Drink) error {
	result := d.db.WithContext(ctx).Model(&Drink{}).Where("id = ?", drink.ID).Updates(map[string]interface{}{
		"name": drink.Name,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (d *DrinkDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Drink{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (d *DrinkDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Drink{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
