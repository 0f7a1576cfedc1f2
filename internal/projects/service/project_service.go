package service

import (
	"context"

	"github.com/agile-pm/pm-backend/internal/projects/domain"
	"github.com/agile-pm/pm-backend/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// Create creates a new project, filling in defaults for status and priority
func (s *ProjectService) Create(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	if in.Status == "" {
		in.Status = domain.DefaultStatus
	}
	if in.Priority == nil {
		priority := domain.DefaultPriority
		in.Priority = &priority
	}
	return s.repo.Create(ctx, in)
}

// Get returns a project by id
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update to a project
func (s *ProjectService) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
