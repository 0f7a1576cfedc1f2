package dataset

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// downloadName is the filename offered for the raw file download, kept for
// compatibility with existing backup tooling.
const downloadName = "agile.db"

type Handler struct {
	repo *Repo
}

func Register(rg *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	rg.GET("/dataset", h.download)
	rg.GET("/dataset/raw", h.downloadRaw)
	rg.DELETE("/dataset", h.purge)
}

// download streams the database file as an opaque octet stream.
func (h *Handler) download(c *gin.Context) {
	blob, err := h.repo.ExportRaw(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	c.Data(http.StatusOK, "application/octet-stream", blob)
}

// downloadRaw wraps the same bytes base64-encoded in a JSON envelope.
func (h *Handler) downloadRaw(c *gin.Context) {
	blob, err := h.repo.ExportRaw(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": h.repo.Filename(),
		"data":     base64.StdEncoding.EncodeToString(blob),
	})
}

func (h *Handler) purge(c *gin.Context) {
	if err := h.repo.Purge(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "database reset; all projects purged"})
}
