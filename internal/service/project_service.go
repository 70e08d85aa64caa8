// Package service adapts the persistence layer's optional and boolean
// outcomes into errors the console can report.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhle/projects/internal/model"
	"github.com/nhle/projects/internal/store"
)

// Difficulty bounds.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

var (
	// ErrProjectNotFound is returned when an operation targets an ID with
	// no matching project.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidDifficulty is returned for a difficulty outside 1-5.
	ErrInvalidDifficulty = errors.New("difficulty out of range")
)

// NotFoundError names the project ID that had no matching row. It
// matches ErrProjectNotFound under errors.Is.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project with ID=%d does not exist.", e.ID)
}

// Is reports whether target is ErrProjectNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrProjectNotFound
}

func notFound(id int64) error {
	return &NotFoundError{ID: id}
}

// ProjectService is a thin layer over a store.ProjectStore.
type ProjectService struct {
	store store.ProjectStore
}

// New creates a ProjectService backed by s.
func New(s store.ProjectStore) *ProjectService {
	return &ProjectService{store: s}
}

// AddProject inserts project and returns it with its generated ID.
func (svc *ProjectService) AddProject(ctx context.Context, project model.Project) (model.Project, error) {
	if err := checkDifficulty(project.Difficulty); err != nil {
		return model.Project{}, err
	}
	return svc.store.InsertProject(ctx, project)
}

// FetchAllProjects lists every project by name.
func (svc *ProjectService) FetchAllProjects(ctx context.Context) ([]model.ProjectSummary, error) {
	return svc.store.FetchAllProjects(ctx)
}

// FetchProjectByID returns the project or an error wrapping
// ErrProjectNotFound.
func (svc *ProjectService) FetchProjectByID(ctx context.Context, id int64) (model.Project, error) {
	project, ok, err := svc.store.FetchProjectByID(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	if !ok {
		return model.Project{}, notFound(id)
	}
	return project, nil
}

// ModifyProjectDetails overwrites the stored project with project.ID.
func (svc *ProjectService) ModifyProjectDetails(ctx context.Context, project model.Project) error {
	if err := checkDifficulty(project.Difficulty); err != nil {
		return err
	}
	ok, err := svc.store.UpdateProject(ctx, project)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(project.ID)
	}
	return nil
}

// DeleteProject removes the project with id.
func (svc *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	ok, err := svc.store.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound(id)
	}
	return nil
}

func checkDifficulty(d *int) error {
	if d == nil {
		return nil
	}
	if *d < MinDifficulty || *d > MaxDifficulty {
		return fmt.Errorf("difficulty %d must be between %d and %d: %w",
			*d, MinDifficulty, MaxDifficulty, ErrInvalidDifficulty)
	}
	return nil
}
