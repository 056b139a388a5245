package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  display_name TEXT NOT NULL,
  email_confirmed_at DATETIME,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestCreateAndFindByEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "joao@example.com",
		PasswordHash: "$argon2id$stub",
		DisplayName:  "joao",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Nil(t, created.EmailConfirmedAt)

	found, err := repo.FindByEmail(ctx, "joao@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "joao", found.DisplayName)
}

func TestCreateDuplicateEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	dto := CreateUserDTO{Email: "joao@example.com", PasswordHash: "x", DisplayName: "joao"}
	_, err := repo.Create(ctx, dto)
	require.NoError(t, err)

	_, err = repo.Create(ctx, dto)
	require.Error(t, err)
}

func TestConfirmEmailAndLastLogin(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "joao@example.com",
		PasswordHash: "x",
		DisplayName:  "joao",
	})
	require.NoError(t, err)

	confirmedAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.ConfirmEmail(ctx, created.ID, confirmedAt))

	loginAt := confirmedAt.Add(time.Minute)
	require.NoError(t, repo.UpdateLastLogin(ctx, created.ID, loginAt))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.EmailConfirmedAt)
	require.NotNil(t, found.LastLoginAt)
	assert.True(t, found.LastLoginAt.After(*found.EmailConfirmedAt))
}

func TestDeleteReportsRowsAffected(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "joao@example.com",
		PasswordHash: "x",
		DisplayName:  "joao",
	})
	require.NoError(t, err)

	rows, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}
