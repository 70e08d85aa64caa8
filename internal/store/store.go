package store

import (
	"context"

	"github.com/nhle/projects/internal/model"
)

// ProjectStore defines the persistence interface for project rows.
//
// Absence is not an error at this layer: FetchProjectByID reports a missing
// row through its bool result, and UpdateProject/DeleteProject report
// whether exactly one row was affected.
type ProjectStore interface {
	InsertProject(ctx context.Context, project model.Project) (model.Project, error)
	FetchAllProjects(ctx context.Context) ([]model.ProjectSummary, error)
	FetchProjectByID(ctx context.Context, id int64) (model.Project, bool, error)
	UpdateProject(ctx context.Context, project model.Project) (bool, error)
	DeleteProject(ctx context.Context, id int64) (bool, error)
	Close() error
}

var _ ProjectStore = (*SQLStore)(nil)
