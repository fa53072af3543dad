package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrUsernameTaken = errors.New("admin user already exists")

// AdminUser keeps the historical camelCase passwordHash column name so the
// table stays compatible with existing deployments.
type AdminUser struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"column:passwordHash;not null"`
	Email        string `gorm:"not null"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
}

func (AdminUser) TableName() string {
	return "admin_user"
}

type AdminUserDAO struct {
	db *gorm.DB
}

func NewAdminUserDAO(db *gorm.DB) *AdminUserDAO {
	return &AdminUserDAO{
		db: db,
	}
}

func (d *AdminUserDAO) FindByUsername(ctx context.Context, username string) (AdminUser, error) {
	var user AdminUser

	result := d.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return AdminUser{}, ErrNotFound
		}

		return AdminUser{}, result.Error
	}

	return user, nil
}

// Insert is only reached by cmd/admincreator; the API never writes this table.
func (d *AdminUserDAO) Insert(ctx context.Context, user AdminUser) error {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrUsernameTaken
		}

		return result.Error
	}

	return nil
}
