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

const noteColumns = `id, project_id, content, created_at, updated_at`

// NoteRepository provides persistence operations for project notes
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func scanNote(row rowScanner) (*domain.ProjectNote, error) {
	var n domain.ProjectNote
	var createdAt, updatedAt int64
	err := row.Scan(&n.ID, &n.ProjectID, &n.Content, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	n.CreatedAt = time.Unix(0, createdAt).UTC()
	n.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &n, nil
}

func (r *NoteRepository) parentExists(ctx context.Context, projectID int64) error {
	const q = `SELECT EXISTS (SELECT 1 FROM project WHERE id = ?);`

	var exists bool
	if err := r.db.QueryRowContext(ctx, q, projectID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrProjectNotFound
	}
	return nil
}

// Create inserts a note after verifying its parent project exists. The check
// happens only at creation time; there is no enforced foreign key afterwards.
func (r *NoteRepository) Create(ctx context.Context, projectID int64, content string) (*domain.ProjectNote, error) {
	if content == "" {
		return nil, fmt.Errorf("content required")
	}
	if err := r.parentExists(ctx, projectID); err != nil {
		return nil, err
	}

	const q = `
INSERT INTO projectnote (project_id, content, created_at, updated_at)
VALUES (?, ?, ?, ?)
RETURNING ` + noteColumns + `;
`
	now := time.Now().UTC().UnixNano()
	return scanNote(r.db.QueryRowContext(ctx, q, projectID, content, now, now))
}

// Get returns the note with the given id. The parent project is not re-checked.
func (r *NoteRepository) Get(ctx context.Context, id int64) (*domain.ProjectNote, error) {
	const q = `SELECT ` + noteColumns + ` FROM projectnote WHERE id = ?;`

	n, err := scanNote(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return n, nil
}

// ListForProject returns all notes under the given project, oldest first.
func (r *NoteRepository) ListForProject(ctx context.Context, projectID int64) ([]domain.ProjectNote, error) {
	if err := r.parentExists(ctx, projectID); err != nil {
		return nil, err
	}

	const q = `SELECT ` + noteColumns + ` FROM projectnote WHERE project_id = ? ORDER BY id;`

	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProjectNote, 0, 16)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

// Update overwrites the supplied fields and refreshes updated_at.
func (r *NoteRepository) Update(ctx context.Context, id int64, patch domain.NotePatch) (*domain.ProjectNote, error) {
	set := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if patch.Content.Set {
		set = append(set, "content = ?")
		args = append(args, patch.Content.Value)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().UnixNano())
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE projectnote SET %s WHERE id = ? RETURNING %s;`,
		strings.Join(set, ", "), noteColumns)

	n, err := scanNote(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return n, nil
}

// Delete removes the note row.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM projectnote WHERE id = ?;`

	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
