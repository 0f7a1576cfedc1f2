package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	httpapi "github.com/agile-pm/pm-backend/internal/api/http"
	"github.com/agile-pm/pm-backend/internal/api/http/middleware"
	"github.com/agile-pm/pm-backend/internal/dataset"
	projecthttp "github.com/agile-pm/pm-backend/internal/projects/http"
	"github.com/agile-pm/pm-backend/internal/projects/repository"
	"github.com/agile-pm/pm-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	APIKey      string
	DB          *sql.DB
	DBPath      string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RateLimitMiddleware(rate.NewLimiter(rate.Limit(100), 200)))
	r.Use(middleware.APIKeyMiddleware(dep.APIKey))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	projectRepo := repository.NewProjectRepository(dep.DB)
	noteRepo := repository.NewNoteRepository(dep.DB)

	handler := projecthttp.New(
		service.NewProjectService(projectRepo),
		service.NewNoteService(noteRepo),
	)
	handler.Register(r.Group("/projects"))
	handler.RegisterNoteRoutes(r.Group("/notes"))

	datasetRepo := dataset.NewRepo(dep.DB, dep.DBPath)
	dataset.Register(r.Group("/api"), datasetRepo)

	return r
}
