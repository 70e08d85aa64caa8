package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nhle/projects/internal/model"
)

const projectColumns = "project_id, project_name, estimated_hours, actual_hours, difficulty, notes"

// InsertProject inserts a new project and returns it with the generated ID.
func (s *SQLStore) InsertProject(ctx context.Context, project model.Project) (model.Project, error) {
	if strings.TrimSpace(project.Name) == "" {
		return model.Project{}, fmt.Errorf("project name must not be empty")
	}
	project = normalizeHours(project)

	query := s.db.Rebind(`
		INSERT INTO project (project_name, estimated_hours, actual_hours, difficulty, notes)
		VALUES (?, ?, ?, ?, ?)
		RETURNING project_id`)

	var id int64
	err := s.db.QueryRowxContext(ctx, query,
		project.Name, project.EstimatedHours, project.ActualHours,
		project.Difficulty, project.Notes,
	).Scan(&id)
	if err != nil {
		return model.Project{}, fmt.Errorf("creating project: %w", err)
	}

	project.ID = id
	return project, nil
}

// FetchAllProjects returns the ID and name of every project, ordered by name.
func (s *SQLStore) FetchAllProjects(ctx context.Context) ([]model.ProjectSummary, error) {
	var projects []model.ProjectSummary
	err := s.db.SelectContext(ctx, &projects,
		"SELECT project_id, project_name FROM project ORDER BY project_name, project_id")
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	return projects, nil
}

// FetchProjectByID retrieves a single project. The bool result is false
// when no project has that ID.
func (s *SQLStore) FetchProjectByID(ctx context.Context, id int64) (model.Project, bool, error) {
	var project model.Project
	err := s.db.GetContext(ctx, &project,
		s.db.Rebind("SELECT "+projectColumns+" FROM project WHERE project_id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, false, nil
	}
	if err != nil {
		return model.Project{}, false, fmt.Errorf("getting project %d: %w", id, err)
	}
	return project, true, nil
}

// UpdateProject overwrites every mutable column of the project with
// project.ID. It reports whether exactly one row was changed.
func (s *SQLStore) UpdateProject(ctx context.Context, project model.Project) (bool, error) {
	if strings.TrimSpace(project.Name) == "" {
		return false, fmt.Errorf("project name must not be empty")
	}
	project = normalizeHours(project)

	result, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE project SET
			project_name = ?, estimated_hours = ?, actual_hours = ?,
			difficulty = ?, notes = ?
		WHERE project_id = ?`),
		project.Name, project.EstimatedHours, project.ActualHours,
		project.Difficulty, project.Notes,
		project.ID,
	)
	if err != nil {
		return false, fmt.Errorf("updating project %d: %w", project.ID, err)
	}
	return exactlyOne(result)
}

// DeleteProject removes a project. It reports whether exactly one row was
// removed.
func (s *SQLStore) DeleteProject(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM project WHERE project_id = ?"), id)
	if err != nil {
		return false, fmt.Errorf("deleting project %d: %w", id, err)
	}
	return exactlyOne(result)
}

func exactlyOne(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w", err)
	}
	return rows == 1, nil
}

// normalizeHours rounds both hour values to two fractional digits.
func normalizeHours(p model.Project) model.Project {
	if p.EstimatedHours.Valid {
		p.EstimatedHours = model.Hours(p.EstimatedHours.Decimal)
	}
	if p.ActualHours.Valid {
		p.ActualHours = model.Hours(p.ActualHours.Decimal)
	}
	return p
}
