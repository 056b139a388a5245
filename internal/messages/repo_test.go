package messages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMessagesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS mensagens (
  id TEXT PRIMARY KEY,
  cliente_id TEXT,
  conteudo TEXT NOT NULL,
  enviada_em DATETIME NOT NULL
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedMessage(t *testing.T, repo *Repository, content string, sentAt time.Time) {
	t.Helper()
	model := CreateMessageDTO{Content: content, SentAt: sentAt}.ToModel()
	require.NoError(t, repo.Create(context.Background(), model))
}

func TestCountSentBetweenBoundaries(t *testing.T) {
	db := setupMessagesTestDB(t)
	repo := NewRepository(db)

	dayStart := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	seedMessage(t, repo, "bom dia", dayStart)
	seedMessage(t, repo, "ate logo", dayEnd.Add(-time.Second))
	seedMessage(t, repo, "ontem", dayStart.Add(-time.Second))
	seedMessage(t, repo, "amanha", dayEnd)

	count, err := repo.CountSentBetween(context.Background(), dayStart, dayEnd)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestListMostRecentFirst(t *testing.T) {
	db := setupMessagesTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	seedMessage(t, repo, "primeira", base)
	seedMessage(t, repo, "segunda", base.Add(time.Minute))

	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "segunda", rows[0].Content)
}

var _ Store = (*Repository)(nil)
