package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agile-pm/pm-backend/internal/projects/domain"
)

const deadlineLayout = "2006-01-02"

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func validDeadline(deadline *string) bool {
	if deadline == nil {
		return true
	}
	_, err := time.Parse(deadlineLayout, *deadline)
	return err == nil
}

// fail maps domain errors onto HTTP responses; anything unrecognized is a
// storage failure and surfaces as 500.
func fail(c *gin.Context, err error, id int64) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": fmt.Sprintf("Project %d not found", id)})
	case errors.Is(err, domain.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": fmt.Sprintf("Note %d not found", id)})
	case errors.Is(err, domain.ErrDuplicateProjectID):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "project_id already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.ProjectID) == "" || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "project_id and name are required"})
		return
	}
	if !validDeadline(req.Deadline) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "deadline must be a YYYY-MM-DD date"})
		return
	}

	p, err := h.projects.Create(c.Request.Context(), domain.NewProject{
		ProjectID:   strings.TrimSpace(req.ProjectID),
		Name:        strings.TrimSpace(req.Name),
		Status:      req.Status,
		Priority:    req.Priority,
		Domain:      req.Domain,
		NextSteps:   req.NextSteps,
		Deadline:    req.Deadline,
		ProjectType: req.ProjectType,
		Tooling:     req.Tooling,
		Description: req.Description,
	})
	if err != nil {
		fail(c, err, 0)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		fail(c, err, 0)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, id)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	patch, err := buildProjectPatch(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if patch.Deadline.Set && !validDeadline(patch.Deadline.Value) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "deadline must be a YYYY-MM-DD date"})
		return
	}

	p, err := h.projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err, id)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, id)
		return
	}
	c.Status(http.StatusNoContent)
}
