package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.NoteRepository())
	assert.NotNil(t, uow.NoteHistoryRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	ctx := context.Background()
	suffix := uuid.New().String()[:8]

	// Seed an owner and a collaborator for the note lifecycle checks.
	owner := &entity.User{
		Id:       uuid.New(),
		Username: "it-owner-" + suffix,
		Email:    "it-owner-" + suffix + "@example.com",
	}
	collaborator := &entity.User{
		Id:       uuid.New(),
		Username: "it-collab-" + suffix,
		Email:    "it-collab-" + suffix + "@example.com",
	}
	require.NoError(t, uow.UserRepository().Create(ctx, owner))
	require.NoError(t, uow.UserRepository().Create(ctx, collaborator))
	defer uow.UserRepository().Delete(ctx, owner.Id)
	defer uow.UserRepository().Delete(ctx, collaborator.Id)

	t.Run("Find User By Username Specification", func(t *testing.T) {
		found, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: owner.Username})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, owner.Id, found.Id)
	})

	t.Run("Note Lifecycle With Shares And History", func(t *testing.T) {
		note := &entity.Note{
			Id:        uuid.New(),
			Title:     "Integration Note",
			Content:   "v1",
			UserId:    owner.Id,
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.NoteRepository().Create(ctx, note))

		// Share, twice to confirm idempotence.
		require.NoError(t, uow.NoteRepository().AddShare(ctx, note.Id, collaborator.Id))
		require.NoError(t, uow.NoteRepository().AddShare(ctx, note.Id, collaborator.Id))

		loaded, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, []uuid.UUID{collaborator.Id}, loaded.SharedWith)

		// Snapshot a history row before an update.
		history := &entity.NoteHistory{
			Id:        uuid.New(),
			NoteId:    note.Id,
			Content:   loaded.Content,
			UpdatedBy: owner.Id,
			UpdatedAt: time.Now(),
		}
		require.NoError(t, uow.NoteHistoryRepository().Create(ctx, history))

		histories, err := uow.NoteHistoryRepository().FindAll(ctx,
			specification.ByNoteID{NoteID: note.Id},
			specification.OrderBy{Field: "updated_at"},
		)
		require.NoError(t, err)
		require.Len(t, histories, 1)
		assert.Equal(t, "v1", histories[0].Content)

		// Transactional cascade delete.
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))
		defer txUow.Rollback()

		require.NoError(t, txUow.NoteHistoryRepository().DeleteByNoteId(ctx, note.Id))
		require.NoError(t, txUow.NoteRepository().DeleteSharesByNoteId(ctx, note.Id))
		require.NoError(t, txUow.NoteRepository().Delete(ctx, note.Id))
		require.NoError(t, txUow.Commit())

		gone, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: note.Id})
		require.NoError(t, err)
		assert.Nil(t, gone)

		t.Log("Successfully ran note lifecycle in Transaction")
	})
}
