package console

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/projects/internal/model"
)

// createProject gathers the fields of a new project and adds it.
func (s *Session) createProject(ctx context.Context) error {
	name, err := s.readString("Enter the project name")
	if err != nil {
		return err
	}
	estimatedHours, err := s.readDecimal("Enter the estimated hours")
	if err != nil {
		return err
	}
	actualHours, err := s.readDecimal("Enter the actual hours")
	if err != nil {
		return err
	}
	difficulty, err := s.readInt("Enter the project difficulty (1-5)")
	if err != nil {
		return err
	}
	notes, err := s.readString("Enter the project notes")
	if err != nil {
		return err
	}

	project := model.Project{
		EstimatedHours: estimatedHours,
		ActualHours:    actualHours,
		Difficulty:     difficulty,
		Notes:          notes,
	}
	if name != nil {
		project.Name = *name
	}

	created, err := s.svc.AddProject(ctx, project)
	if err != nil {
		return err
	}

	s.logger.Info("project added", zap.Int64("project_id", created.ID))
	s.println(s.styles.Success.Render("You have successfully created project:") + " " + s.describe(created))
	return nil
}

// listProjects prints the ID and name of every project.
func (s *Session) listProjects(ctx context.Context) error {
	projects, err := s.svc.FetchAllProjects(ctx)
	if err != nil {
		return err
	}

	s.println("\n" + s.styles.Header.Render("Projects:"))
	for _, p := range projects {
		s.println(fmt.Sprintf("   %d: %s", p.ID, p.Name))
	}
	return nil
}

// selectProject makes a project current. The previous selection is cleared
// before the lookup so that an unknown ID leaves nothing selected.
func (s *Session) selectProject(ctx context.Context) error {
	if err := s.listProjects(ctx); err != nil {
		return err
	}

	id, err := s.readInt("Enter a project ID to select a project")
	if err != nil {
		return err
	}

	s.current = nil
	if id == nil {
		s.println("\n" + s.styles.Warning.Render("No project ID entered."))
		return nil
	}

	project, err := s.svc.FetchProjectByID(ctx, int64(*id))
	if err != nil {
		return err
	}

	s.current = &project
	s.logger.Info("project selected", zap.Int64("project_id", project.ID))
	return nil
}

// updateProjectDetails prompts for each field of the current project,
// keeping the old value wherever the user enters nothing.
func (s *Session) updateProjectDetails(ctx context.Context) error {
	if s.current == nil {
		s.println("\n" + s.styles.Warning.Render("Please select a project."))
		return nil
	}
	cur := *s.current

	var (
		patch model.ProjectPatch
		err   error
	)
	patch.Name, err = s.readString(fmt.Sprintf("Enter the project name [%s]", cur.Name))
	if err != nil {
		return err
	}
	patch.EstimatedHours, err = s.readDecimal(
		fmt.Sprintf("Enter the estimated hours [%s]", model.FormatHours(cur.EstimatedHours)))
	if err != nil {
		return err
	}
	patch.ActualHours, err = s.readDecimal(
		fmt.Sprintf("Enter the actual hours [%s]", model.FormatHours(cur.ActualHours)))
	if err != nil {
		return err
	}
	patch.Difficulty, err = s.readInt(
		fmt.Sprintf("Enter the project difficulty (1-5) [%s]", model.FormatInt(cur.Difficulty)))
	if err != nil {
		return err
	}
	patch.Notes, err = s.readString(
		fmt.Sprintf("Enter the project notes [%s]", model.FormatString(cur.Notes)))
	if err != nil {
		return err
	}

	if err := s.svc.ModifyProjectDetails(ctx, patch.Apply(cur)); err != nil {
		return err
	}

	refreshed, err := s.svc.FetchProjectByID(ctx, cur.ID)
	if err != nil {
		return err
	}
	s.current = &refreshed
	s.logger.Info("project updated", zap.Int64("project_id", cur.ID))
	return nil
}

// deleteProject removes a project, dropping the selection if it was the
// current one.
func (s *Session) deleteProject(ctx context.Context) error {
	if err := s.listProjects(ctx); err != nil {
		return err
	}

	id, err := s.readInt("Enter the ID of the project to delete")
	if err != nil {
		return err
	}
	if id == nil {
		s.println("\n" + s.styles.Warning.Render("No project ID entered."))
		return nil
	}
	projectID := int64(*id)

	if err := s.svc.DeleteProject(ctx, projectID); err != nil {
		return err
	}

	s.println(s.styles.Success.Render(fmt.Sprintf("Project %d was deleted successfully.", projectID)))
	s.logger.Info("project deleted", zap.Int64("project_id", projectID))

	if s.current != nil && s.current.ID == projectID {
		s.current = nil
	}
	return nil
}
