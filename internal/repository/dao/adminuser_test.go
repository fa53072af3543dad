package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUserDAO_FindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewAdminUserDAO(db)

	mock.ExpectQuery(`SELECT \* FROM "admin_user" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "passwordHash", "email", "first_name", "last_name"}).
			AddRow(1, "admin", "$2a$10$hash", "admin@example.com", "Astrid", "Berg"))

	user, err := d.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)

	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminUserDAO_FindByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewAdminUserDAO(db)

	mock.ExpectQuery(`SELECT \* FROM "admin_user" WHERE username = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "passwordHash", "email", "first_name", "last_name"}))

	user, err := d.FindByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminUserDAO_Insert_UsernameTaken(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewAdminUserDAO(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "admin_user"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	err := d.Insert(context.Background(), AdminUser{
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
		Email:        "admin@example.com",
		FirstName:    "Astrid",
		LastName:     "Berg",
	})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
