package http

import "github.com/gin-gonic/gin"

// Register attaches project routes (and nested note routes) to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/", h.createProject)
	rg.GET("/", h.listProjects)
	rg.GET("/:id", h.getProject)
	rg.PUT("/:id", h.updateProject)
	rg.DELETE("/:id", h.deleteProject)

	rg.POST("/:id/notes/", h.createNote)
	rg.GET("/:id/notes/", h.listNotes)
}

// RegisterNoteRoutes attaches the note-by-id routes to the given group.
func (h *Handler) RegisterNoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/:id", h.getNote)
	rg.PUT("/:id", h.updateNote)
	rg.DELETE("/:id", h.deleteNote)
}
