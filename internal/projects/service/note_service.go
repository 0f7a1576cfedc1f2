package service

import (
	"context"

	"github.com/agile-pm/pm-backend/internal/projects/domain"
	"github.com/agile-pm/pm-backend/internal/projects/repository"
)

// NoteService handles note-related business logic
type NoteService struct {
	repo *repository.NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{
		repo: repo,
	}
}

// Create creates a note under an existing project
func (s *NoteService) Create(ctx context.Context, projectID int64, content string) (*domain.ProjectNote, error) {
	return s.repo.Create(ctx, projectID, content)
}

// Get returns a note by id
func (s *NoteService) Get(ctx context.Context, id int64) (*domain.ProjectNote, error) {
	return s.repo.Get(ctx, id)
}

// ListForProject returns all notes under a project
func (s *NoteService) ListForProject(ctx context.Context, projectID int64) ([]domain.ProjectNote, error) {
	return s.repo.ListForProject(ctx, projectID)
}

// Update applies a partial update to a note
func (s *NoteService) Update(ctx context.Context, id int64, patch domain.NotePatch) (*domain.ProjectNote, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a note
func (s *NoteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
