package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agile-pm/pm-backend/config"
	"github.com/agile-pm/pm-backend/internal/projects/domain"
	sqlitestore "github.com/agile-pm/pm-backend/internal/storage/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlitestore.NewConnection(&config.DatabaseConfig{
		Dir:  t.TempDir(),
		File: "test.db",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, sqlitestore.InitSchema(db))
	return db
}

func strPtr(s string) *string {
	return &s
}

func TestProjectCreate(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))
	ctx := context.Background()

	p, err := repo.Create(ctx, domain.NewProject{
		ProjectID: "P-001",
		Name:      "Test Project",
		Status:    "Planned",
		Priority:  strPtr("Medium"),
	})
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "P-001", p.ProjectID)
	assert.Equal(t, "Test Project", p.Name)
	assert.Equal(t, "Planned", p.Status)
	require.NotNil(t, p.Priority)
	assert.Equal(t, "Medium", *p.Priority)
	assert.Nil(t, p.Description)
	assert.True(t, p.CreatedAt.Equal(p.UpdatedAt), "created_at and updated_at must match on insert")

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProjectCreateDuplicateProjectID(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "First", Status: "Planned"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Second", Status: "Planned"})
	assert.ErrorIs(t, err, domain.ErrDuplicateProjectID)

	// The first row must be untouched.
	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)
}

func TestProjectGetNotFound(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectList(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	for _, pid := range []string{"P-001", "P-002", "P-003"} {
		_, err := repo.Create(ctx, domain.NewProject{ProjectID: pid, Name: "Project " + pid, Status: "Planned"})
		require.NoError(t, err)
	}

	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "P-001", items[0].ProjectID)
	assert.Equal(t, "P-003", items[2].ProjectID)
}

func TestProjectUpdatePartial(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))
	ctx := context.Background()

	p, err := repo.Create(ctx, domain.NewProject{
		ProjectID: "P-001",
		Name:      "Test Project",
		Status:    "Planned",
		Domain:    strPtr("Platform"),
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(ctx, p.ID, domain.ProjectPatch{Status: domain.SetField("Active")})
	require.NoError(t, err)

	assert.Equal(t, "Active", updated.Status)
	// Omitted fields keep their stored values.
	assert.Equal(t, p.Name, updated.Name)
	require.NotNil(t, updated.Domain)
	assert.Equal(t, "Platform", *updated.Domain)
	assert.True(t, updated.CreatedAt.Equal(p.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(p.UpdatedAt), "updated_at must strictly increase")
}

func TestProjectUpdateClearsNullableField(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))
	ctx := context.Background()

	p, err := repo.Create(ctx, domain.NewProject{
		ProjectID: "P-001",
		Name:      "Test Project",
		Status:    "Planned",
		Domain:    strPtr("Platform"),
		Tooling:   strPtr("Go"),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, p.ID, domain.ProjectPatch{Domain: domain.ClearField()})
	require.NoError(t, err)

	assert.Nil(t, updated.Domain, "cleared field must read back as null")
	require.NotNil(t, updated.Tooling)
	assert.Equal(t, "Go", *updated.Tooling)
}

func TestProjectUpdateEmptyPatchRefreshesTimestamp(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))
	ctx := context.Background()

	p, err := repo.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Test Project", Status: "Planned"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(ctx, p.ID, domain.ProjectPatch{})
	require.NoError(t, err)
	assert.Equal(t, p.Name, updated.Name)
	assert.Equal(t, p.Status, updated.Status)
	assert.True(t, updated.UpdatedAt.After(p.UpdatedAt))
}

func TestProjectUpdateNotFound(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))

	_, err := repo.Update(context.Background(), 42, domain.ProjectPatch{Name: domain.SetField("x")})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectDelete(t *testing.T) {
	repo := NewProjectRepository(openTestDB(t))
	ctx := context.Background()

	p, err := repo.Create(ctx, domain.NewProject{ProjectID: "P-001", Name: "Test Project", Status: "Planned"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err = repo.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	// Deleting again is a clean not-found, not a crash.
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), domain.ErrProjectNotFound)
}
