// File: internal/repository/conversation/conversation_repository_test.go
package conversation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/threadflow/threadflow/internal/domain"
)

func setupTestRepo(t *testing.T) (ConversationRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Conversation{}))

	return NewConversationRepository(db), db
}

func TestConversationRepository_RoundTrip(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	conv := domain.NewConversation("user-1", "weekend plans")
	conv.Append(
		domain.NewMessageTurn(domain.RoleUser, "Any hiking ideas?"),
		domain.NewMessageTurn(domain.RoleAssistant, "Try the coastal trail."),
	)
	require.NoError(t, repo.Upsert(ctx, conv))

	loaded, err := repo.FindOwned(ctx, conv.ID, "user-1")
	require.NoError(t, err)

	assert.Equal(t, conv.ID, loaded.ID)
	assert.Equal(t, "weekend plans", loaded.Title)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, conv.Messages[0].ID, loaded.Messages[0].ID)
	assert.Equal(t, domain.RoleUser, loaded.Messages[0].Role)
	assert.Equal(t, "Any hiking ideas?", loaded.Messages[0].Content)
	assert.Equal(t, conv.Messages[1].ID, loaded.Messages[1].ID)
	assert.Equal(t, "Try the coastal trail.", loaded.Messages[1].Content)
}

func TestConversationRepository_FindOwned_MissingAndForeign(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	conv := domain.NewConversation("user-b", "private notes")
	require.NoError(t, repo.Upsert(ctx, conv))

	_, err := repo.FindOwned(ctx, "no-such-id", "user-a")
	assert.ErrorIs(t, err, ErrConversationNotFound)

	// Foreign ownership reports exactly like absence.
	_, err = repo.FindOwned(ctx, conv.ID, "user-a")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestConversationRepository_FindOwned_InvalidInput(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.FindOwned(ctx, "", "user-1")
	assert.Error(t, err)

	_, err = repo.FindOwned(ctx, "some-id", "")
	assert.Error(t, err)
}

func TestConversationRepository_Upsert_ReplacesByID(t *testing.T) {
	repo, db := setupTestRepo(t)
	ctx := context.Background()

	conv := domain.NewConversation("user-1", "first title")
	conv.Append(domain.NewMessageTurn(domain.RoleUser, "q1"))
	require.NoError(t, repo.Upsert(ctx, conv))

	conv.Title = "second title"
	conv.Append(
		domain.NewMessageTurn(domain.RoleAssistant, "a1"),
		domain.NewMessageTurn(domain.RoleUser, "q2"),
	)
	require.NoError(t, repo.Upsert(ctx, conv))

	loaded, err := repo.FindOwned(ctx, conv.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "second title", loaded.Title)
	require.Len(t, loaded.Messages, 3)

	var count int64
	require.NoError(t, db.Model(&domain.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConversationRepository_Insert_RejectsDuplicateID(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	conv := domain.NewConversation("user-1", "original")
	require.NoError(t, repo.Insert(ctx, conv))

	dupe := domain.NewConversation("user-1", "impostor")
	dupe.ID = conv.ID
	assert.Error(t, repo.Insert(ctx, dupe))
}

func TestConversationRepository_Insert_ValidatesInput(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	assert.Error(t, repo.Insert(ctx, nil))
	assert.Error(t, repo.Insert(ctx, &domain.Conversation{ID: "", UserID: "user-1"}))
	assert.Error(t, repo.Upsert(ctx, &domain.Conversation{ID: "some-id", UserID: ""}))
}

func TestConversationRepository_FindMetaByUserID(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	base := time.Now().Add(-24 * time.Hour)

	older := domain.NewConversation("user-1", "older")
	older.Append(domain.NewMessageTurn(domain.RoleUser, "hidden from listings"))
	older.UpdatedAt = base
	require.NoError(t, repo.Upsert(ctx, older))

	newer := domain.NewConversation("user-1", "newer")
	newer.UpdatedAt = base.Add(2 * time.Hour)
	require.NoError(t, repo.Upsert(ctx, newer))

	foreign := domain.NewConversation("user-2", "foreign")
	require.NoError(t, repo.Upsert(ctx, foreign))

	metas, err := repo.FindMetaByUserID(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, metas, 2)
	assert.Equal(t, newer.ID, metas[0].ID)
	assert.Equal(t, older.ID, metas[1].ID)

	// The message sequences stay out of the listing.
	assert.Empty(t, metas[0].Messages)
	assert.Empty(t, metas[1].Messages)

	_, err = repo.FindMetaByUserID(ctx, "")
	assert.Error(t, err)
}
