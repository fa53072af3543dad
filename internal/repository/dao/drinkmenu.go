package dao

import (
	"context"

	"gorm.io/gorm"
)

type DrinkMenu struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"not null"`
	Subtitle string `gorm:"not null"`
	PriceTot int    `gorm:"column:price_tot;not null"`
}

func (DrinkMenu) TableName() string {
	return "drink_menu"
}

type DrinkMenuDAO struct {
	db *gorm.DB
}

func NewDrinkMenuDAO(db *gorm.DB) *DrinkMenuDAO {
	return &DrinkMenuDAO{
		db: db,
	}
}

func (d *DrinkMenuDAO) FindAll(ctx context.Context) ([]DrinkMenu, error) {
	var menus []DrinkMenu

	result := d.db.WithContext(ctx).Order("id ASC").Find(&menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

func (d *DrinkMenuDAO) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&DrinkMenu{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *DrinkMenuDAO) Update(ctx context.Context, menu DrinkMenu) error {
	result := d.db.WithContext(ctx).Model(&DrinkMenu{}).Where("id = ?", menu.ID).Updates(map[string]interface{}{
		"price_tot": menu.PriceTot,
		"subtitle":  menu.Subtitle,
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
