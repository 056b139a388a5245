package clients

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

func setupClientsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS clientes (
  id TEXT PRIMARY KEY,
  nome TEXT NOT NULL,
  email TEXT,
  telefone TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestCreateAndListNewestFirst(t *testing.T) {
	db := setupClientsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := CreateClientDTO{Name: "Primeiro"}.ToModel()
	require.NoError(t, repo.Create(ctx, first))

	second := CreateClientDTO{Name: "Segundo"}.ToModel()
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, second))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Segundo", rows[0].Name)
}

func TestSaveUpdatesOptionalColumns(t *testing.T) {
	db := setupClientsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	phone := "+55 11 91234-5678"
	client := CreateClientDTO{Name: "Maria", Phone: &phone}.ToModel()
	require.NoError(t, repo.Create(ctx, client))

	client.Phone = nil
	email := "maria@example.com"
	client.Email = &email
	require.NoError(t, repo.Save(ctx, client))

	found, err := repo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Nil(t, found.Phone)
	require.NotNil(t, found.Email)
	assert.Equal(t, "maria@example.com", *found.Email)
}

func TestDeleteReportsAffectedRows(t *testing.T) {
	db := setupClientsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	client := CreateClientDTO{Name: "Maria"}.ToModel()
	require.NoError(t, repo.Create(ctx, client))

	rows, err := repo.Delete(ctx, client.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = repo.Delete(ctx, uuid.New())
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}

func TestFindByIDMissing(t *testing.T) {
	db := setupClientsTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

var _ Store = (*Repository)(nil)
