package mapper

import (
	"testing"
	"time"

	"shared-notes-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteMapper_ToEntity(t *testing.T) {
	m := NewNoteMapper()
	noteId := uuid.New()
	ownerId := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	created := time.Now().Add(-time.Hour)

	n := &model.Note{
		Id:        noteId,
		Title:     "Plan",
		Content:   "content",
		UserId:    ownerId,
		CreatedAt: created,
	}
	shares := []*model.NoteShare{
		{Id: uuid.New(), NoteId: noteId, UserId: bob},
		{Id: uuid.New(), NoteId: noteId, UserId: carol},
	}

	e := m.ToEntity(n, shares)
	require.NotNil(t, e)

	assert.Equal(t, noteId, e.Id)
	assert.Equal(t, ownerId, e.UserId)
	assert.Equal(t, []uuid.UUID{bob, carol}, e.SharedWith)
	assert.Nil(t, e.UpdatedAt, "zero updated_at means never updated")

	t.Run("no shares yields empty set", func(t *testing.T) {
		e := m.ToEntity(n, nil)
		require.NotNil(t, e)
		assert.NotNil(t, e.SharedWith)
		assert.Empty(t, e.SharedWith)
	})

	t.Run("updated_at survives", func(t *testing.T) {
		updated := time.Now()
		n.UpdatedAt = updated
		e := m.ToEntity(n, nil)
		require.NotNil(t, e.UpdatedAt)
		assert.True(t, e.UpdatedAt.Equal(updated))
	})

	t.Run("nil model", func(t *testing.T) {
		assert.Nil(t, m.ToEntity(nil, shares))
	})
}

func TestNoteMapper_ToModel(t *testing.T) {
	m := NewNoteMapper()
	updated := time.Now()

	e := m.ToEntity(&model.Note{
		Id:        uuid.New(),
		Title:     "Plan",
		Content:   "content",
		UserId:    uuid.New(),
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: updated,
	}, nil)

	n := m.ToModel(e)
	require.NotNil(t, n)
	assert.Equal(t, e.Id, n.Id)
	assert.Equal(t, e.Title, n.Title)
	assert.Equal(t, e.UserId, n.UserId)
	assert.True(t, n.UpdatedAt.Equal(updated))
}

func TestNoteMapper_History(t *testing.T) {
	m := NewNoteMapper()

	rows := []*model.NoteHistory{
		{Id: uuid.New(), NoteId: uuid.New(), Content: "v1", UpdatedBy: uuid.New(), UpdatedAt: time.Now()},
		{Id: uuid.New(), NoteId: uuid.New(), Content: "v2", UpdatedBy: uuid.New(), UpdatedAt: time.Now()},
	}

	entities := m.HistoriesToEntities(rows)
	require.Len(t, entities, 2)
	for i, e := range entities {
		assert.Equal(t, rows[i].Id, e.Id)
		assert.Equal(t, rows[i].Content, e.Content)
		assert.Equal(t, rows[i].UpdatedBy, e.UpdatedBy)
	}

	back := m.HistoryToModel(entities[0])
	assert.Equal(t, rows[0].Id, back.Id)
	assert.Equal(t, rows[0].Content, back.Content)
}
