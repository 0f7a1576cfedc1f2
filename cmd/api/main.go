package main

import (
	"log"

	"github.com/agile-pm/pm-backend/config"
	"github.com/agile-pm/pm-backend/internal/bootstrap"
	sqlitestore "github.com/agile-pm/pm-backend/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := sqlitestore.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Schema must exist before the server accepts traffic.
	if err := sqlitestore.InitSchema(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "agile-pm-api",
		Version:     cfg.App.Version,
		APIKey:      cfg.App.APIKey,
		DB:          db,
		DBPath:      cfg.DatabasePath(),
	})

	log.Printf("listening on :%s (db=%s)", cfg.Server.Port, cfg.DatabasePath())
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
