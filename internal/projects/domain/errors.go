package domain

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrDuplicateProjectID = errors.New("project_id already exists")
)
