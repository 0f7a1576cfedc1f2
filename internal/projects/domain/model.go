package domain

import "time"

// Project represents a high-level project on an agile board.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID          int64     `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    *string   `json:"priority"`
	Domain      *string   `json:"domain"`
	NextSteps   *string   `json:"next_steps"`
	Deadline    *string   `json:"deadline"`
	ProjectType *string   `json:"project_type"`
	Tooling     *string   `json:"tooling"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectNote is a free-form notebook entry attached to a project. Notes
// reference their parent only at creation time; deleting a project leaves
// its notes in place.
type ProjectNote struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProject carries the caller-supplied fields for a project insert.
// Status and Priority fall back to their defaults when empty/nil.
type NewProject struct {
	ProjectID   string
	Name        string
	Status      string
	Priority    *string
	Domain      *string
	NextSteps   *string
	Deadline    *string
	ProjectType *string
	Tooling     *string
	Description *string
}

// PatchField is an optional update value. Set reports whether the field was
// present in the payload at all; Value is nil for an explicit null. An unset
// field leaves the stored value alone.
type PatchField struct {
	Set   bool
	Value *string
}

// SetField returns a PatchField carrying a value.
func SetField(s string) PatchField {
	return PatchField{Set: true, Value: &s}
}

// ClearField returns a PatchField that nulls the column out.
func ClearField() PatchField {
	return PatchField{Set: true}
}

// ProjectPatch is a partial update of a project. Name and Status map to
// non-nullable columns, so their Value must not be nil; the boundary
// enforces that before the patch reaches the store.
type ProjectPatch struct {
	Name        PatchField
	Status      PatchField
	Priority    PatchField
	Domain      PatchField
	NextSteps   PatchField
	Deadline    PatchField
	ProjectType PatchField
	Tooling     PatchField
	Description PatchField
}

// NotePatch is the partial-update shape for notes.
type NotePatch struct {
	Content PatchField
}

const (
	DefaultStatus   = "Planned"
	DefaultPriority = "Medium"
)
