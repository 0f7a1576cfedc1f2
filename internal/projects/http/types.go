package http

import (
	"encoding/json"
	"fmt"

	"github.com/agile-pm/pm-backend/internal/projects/domain"
	"github.com/agile-pm/pm-backend/internal/projects/service"
)

// Handler bundles the dependencies for project and note HTTP endpoints.
type Handler struct {
	projects *service.ProjectService
	notes    *service.NoteService
}

func New(projects *service.ProjectService, notes *service.NoteService) *Handler {
	return &Handler{projects: projects, notes: notes}
}

type createProjectReq struct {
	ProjectID   string  `json:"project_id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Priority    *string `json:"priority"`
	Domain      *string `json:"domain"`
	NextSteps   *string `json:"next_steps"`
	Deadline    *string `json:"deadline"`
	ProjectType *string `json:"project_type"`
	Tooling     *string `json:"tooling"`
	Description *string `json:"description"`
}

type createNoteReq struct {
	Content string `json:"content"`
}

// patchField decodes one raw JSON value into a PatchField. The key was
// present in the payload, so Set is true either way; a JSON null becomes a
// nil Value.
func patchField(key string, raw json.RawMessage) (domain.PatchField, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.PatchField{}, fmt.Errorf("%s must be a string or null", key)
	}
	return domain.PatchField{Set: true, Value: s}, nil
}

// buildProjectPatch turns a decoded update payload into a ProjectPatch,
// keeping the present/absent/null distinction. Unknown keys are ignored.
// name and status cannot be nulled because their columns are NOT NULL.
func buildProjectPatch(raw map[string]json.RawMessage) (domain.ProjectPatch, error) {
	var patch domain.ProjectPatch

	fields := map[string]*domain.PatchField{
		"name":         &patch.Name,
		"status":       &patch.Status,
		"priority":     &patch.Priority,
		"domain":       &patch.Domain,
		"next_steps":   &patch.NextSteps,
		"deadline":     &patch.Deadline,
		"project_type": &patch.ProjectType,
		"tooling":      &patch.Tooling,
		"description":  &patch.Description,
	}

	for key, val := range raw {
		target, known := fields[key]
		if !known {
			continue
		}
		f, err := patchField(key, val)
		if err != nil {
			return patch, err
		}
		if f.Value == nil && (key == "name" || key == "status") {
			return patch, fmt.Errorf("%s cannot be null", key)
		}
		*target = f
	}
	return patch, nil
}
