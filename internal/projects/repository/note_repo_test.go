package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agile-pm/pm-backend/internal/projects/domain"
)

func TestNoteCreate(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectRepository(db)
	notes := NewNoteRepository(db)
	ctx := context.Background()

	p, err := projects.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Test Project", Status: "Planned"})
	require.NoError(t, err)

	n, err := notes.Create(ctx, p.ID, "first note")
	require.NoError(t, err)

	assert.NotZero(t, n.ID)
	assert.Equal(t, p.ID, n.ProjectID)
	assert.Equal(t, "first note", n.Content)
	assert.True(t, n.CreatedAt.Equal(n.UpdatedAt))

	got, err := notes.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestNoteCreateMissingParent(t *testing.T) {
	db := openTestDB(t)
	notes := NewNoteRepository(db)
	ctx := context.Background()

	_, err := notes.Create(ctx, 999, "orphan")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	// No row must have been written.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM projectnote;`).Scan(&count))
	assert.Zero(t, count)
}

func TestNoteListForProject(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectRepository(db)
	notes := NewNoteRepository(db)
	ctx := context.Background()

	p, err := projects.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Test Project", Status: "Planned"})
	require.NoError(t, err)

	for _, content := range []string{"one", "two"} {
		_, err := notes.Create(ctx, p.ID, content)
		require.NoError(t, err)
	}

	items, err := notes.ListForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Content)
	assert.Equal(t, "two", items[1].Content)

	_, err = notes.ListForProject(ctx, p.ID+1)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestNoteUpdate(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectRepository(db)
	notes := NewNoteRepository(db)
	ctx := context.Background()

	p, err := projects.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Test Project", Status: "Planned"})
	require.NoError(t, err)

	n, err := notes.Create(ctx, p.ID, "before")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := notes.Update(ctx, n.ID, domain.NotePatch{Content: domain.SetField("after")})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Content)
	assert.True(t, updated.CreatedAt.Equal(n.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(n.UpdatedAt))

	_, err = notes.Update(ctx, n.ID+1, domain.NotePatch{Content: domain.SetField("x")})
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestNoteDelete(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectRepository(db)
	notes := NewNoteRepository(db)
	ctx := context.Background()

	p, err := projects.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Test Project", Status: "Planned"})
	require.NoError(t, err)

	n, err := notes.Create(ctx, p.ID, "to delete")
	require.NoError(t, err)

	require.NoError(t, notes.Delete(ctx, n.ID))

	_, err = notes.Get(ctx, n.ID)
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)

	assert.ErrorIs(t, notes.Delete(ctx, n.ID), domain.ErrNoteNotFound)
}

func TestNotesSurviveProjectDelete(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectRepository(db)
	notes := NewNoteRepository(db)
	ctx := context.Background()

	p, err := projects.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Test Project", Status: "Planned"})
	require.NoError(t, err)

	n, err := notes.Create(ctx, p.ID, "keepsake")
	require.NoError(t, err)

	require.NoError(t, projects.Delete(ctx, p.ID))

	// No cascade: the note stays retrievable by its own id.
	got, err := notes.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "keepsake", got.Content)
}
