package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agile-pm/pm-backend/internal/projects/domain"
)

const projectColumns = `id, project_id, name, description, status, priority, domain, next_steps, deadline, project_type, tooling, created_at, updated_at`

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var createdAt, updatedAt int64
	err := row.Scan(
		&p.ID, &p.ProjectID, &p.Name, &p.Description, &p.Status, &p.Priority,
		&p.Domain, &p.NextSteps, &p.Deadline, &p.ProjectType, &p.Tooling,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	p.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &p, nil
}

// Create inserts a new project and returns the stored record.
func (r *ProjectRepository) Create(ctx context.Context, in domain.NewProject) (*domain.Project, error) {
	if in.ProjectID == "" {
		return nil, fmt.Errorf("project_id required")
	}
	if in.Name == "" {
		return nil, fmt.Errorf("name required")
	}

	const q = `
INSERT INTO project (project_id, name, description, status, priority, domain, next_steps, deadline, project_type, tooling, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + projectColumns + `;
`
	now := time.Now().UTC().UnixNano()
	p, err := scanProject(r.db.QueryRowContext(ctx, q,
		in.ProjectID, in.Name, in.Description, in.Status, in.Priority,
		in.Domain, in.NextSteps, in.Deadline, in.ProjectType, in.Tooling,
		now, now,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateProjectID
		}
		return nil, err
	}
	return p, nil
}

// Get returns the project with the given id.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM project WHERE id = ?;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns all projects in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM project ORDER BY id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update overwrites exactly the fields present in the patch and refreshes
// updated_at. Omitted fields keep their stored values.
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch domain.ProjectPatch) (*domain.Project, error) {
	set := make([]string, 0, 10)
	args := make([]any, 0, 11)

	add := func(column string, f domain.PatchField) {
		if !f.Set {
			return
		}
		set = append(set, column+" = ?")
		args = append(args, f.Value)
	}

	add("name", patch.Name)
	add("status", patch.Status)
	add("priority", patch.Priority)
	add("domain", patch.Domain)
	add("next_steps", patch.NextSteps)
	add("deadline", patch.Deadline)
	add("project_type", patch.ProjectType)
	add("tooling", patch.Tooling)
	add("description", patch.Description)

	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().UnixNano())
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE project SET %s WHERE id = ? RETURNING %s;`,
		strings.Join(set, ", "), projectColumns)

	p, err := scanProject(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the project row. Notes referencing it are left untouched.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM project WHERE id = ?;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Exists reports whether a project with the given id is stored.
func (r *ProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM project WHERE id = ?);`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
