package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agile-pm/pm-backend/internal/projects/domain"
)

func (h *Handler) createNote(c *gin.Context) {
	projectID, ok := parseID(c)
	if !ok {
		return
	}

	var req createNoteReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "content is required"})
		return
	}

	n, err := h.notes.Create(c.Request.Context(), projectID, req.Content)
	if err != nil {
		fail(c, err, projectID)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *Handler) listNotes(c *gin.Context) {
	projectID, ok := parseID(c)
	if !ok {
		return
	}

	items, err := h.notes.ListForProject(c.Request.Context(), projectID)
	if err != nil {
		fail(c, err, projectID)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	n, err := h.notes.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, id)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) updateNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	var patch domain.NotePatch
	if val, present := raw["content"]; present {
		f, err := patchField("content", val)
		if err != nil || f.Value == nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "content must be a string"})
			return
		}
		patch.Content = f
	}

	n, err := h.notes.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err, id)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *Handler) deleteNote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, id)
		return
	}
	c.Status(http.StatusNoContent)
}
