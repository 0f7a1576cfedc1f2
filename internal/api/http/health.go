package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type HealthHandler struct {
	serviceName string
	version     string
}

func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
	}
}

// HealthCheck returns a fixed payload with no dependencies; it succeeds
// whenever the process is reachable.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Message: "Agile Project Management API is running",
		Service: h.serviceName,
		Version: h.version,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.HealthCheck)
}
