package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	sqlitestore "github.com/agile-pm/pm-backend/internal/storage/sqlite"
)

// Repo operates on the dataset as a whole: raw export of the database file
// and the irreversible purge.
type Repo struct {
	db   *sql.DB
	path string
}

func NewRepo(db *sql.DB, path string) *Repo {
	return &Repo{db: db, path: path}
}

// Filename returns the name of the underlying database file.
func (r *Repo) Filename() string {
	return filepath.Base(r.path)
}

// ExportRaw returns the entire persisted dataset as raw bytes. The journal
// mode keeps all committed data in the single database file, so a plain read
// is byte-complete.
func (r *Repo) ExportRaw(ctx context.Context) ([]byte, error) {
	blob, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}
	return blob, nil
}

// Purge irrecoverably destroys all rows by dropping both tables, then
// recreates an empty schema and vacuums the file back down.
func (r *Repo) Purge(ctx context.Context) error {
	if err := sqlitestore.DropSchema(r.db); err != nil {
		return err
	}
	if err := sqlitestore.InitSchema(r.db); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `VACUUM;`); err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}
	return nil
}
