// Package console implements the interactive, menu-driven project session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nhle/projects/internal/model"
	"github.com/nhle/projects/internal/service"
	"github.com/nhle/projects/internal/theme"
)

// ProjectService is the set of operations the session drives.
type ProjectService interface {
	AddProject(ctx context.Context, project model.Project) (model.Project, error)
	FetchAllProjects(ctx context.Context) ([]model.ProjectSummary, error)
	FetchProjectByID(ctx context.Context, id int64) (model.Project, error)
	ModifyProjectDetails(ctx context.Context, project model.Project) error
	DeleteProject(ctx context.Context, id int64) error
}

var _ ProjectService = (*service.ProjectService)(nil)

var operations = []string{
	"1) Add a project",
	"2) List projects",
	"3) Select a project",
	"4) Update project details",
	"5) Delete a project",
}

// Session is one interactive run of the menu. It owns the "current
// project" that select, update and delete operate on.
type Session struct {
	svc     ProjectService
	reader  *bufio.Reader
	out     io.Writer
	styles  theme.Styles
	logger  *zap.Logger

	current *model.Project
}

// NewSession creates a session reading lines from in and printing to out.
func NewSession(svc ProjectService, in io.Reader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		svc:     svc,
		reader:  bufio.NewReader(in),
		out:     out,
		styles:  theme.New(out),
		logger:  logger.With(zap.String("session_id", uuid.NewString())),
	}
}

// Current returns the selected project, or nil when none is selected.
func (s *Session) Current() *model.Project {
	return s.current
}

// Run prints the menu and dispatches selections until the user enters an
// empty selection or input is exhausted. Action errors are reported and
// the loop continues; only a failure to read input is returned.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started")
	defer s.logger.Info("session ended")

	for {
		done, err := s.processSelection(ctx)
		if done {
			return nil
		}
		if err == nil {
			continue
		}

		var inErr *inputError
		if errors.As(err, &inErr) {
			if errors.Is(err, io.EOF) {
				s.exitMenu()
				return nil
			}
			s.logger.Error("reading console input", zap.Error(err))
			return err
		}
		s.reportError(err)
	}
}

// processSelection prints the menu, reads one selection and performs it.
// done is true once the user asked to quit.
func (s *Session) processSelection(ctx context.Context) (done bool, err error) {
	s.printOperations()

	selection, err := s.readInt("Enter a menu selection")
	if err != nil {
		return false, err
	}
	if selection == nil {
		s.exitMenu()
		return true, nil
	}

	s.logger.Debug("menu selection", zap.Int("selection", *selection))

	switch *selection {
	case 1:
		return false, s.createProject(ctx)
	case 2:
		return false, s.listProjects(ctx)
	case 3:
		return false, s.selectProject(ctx)
	case 4:
		return false, s.updateProjectDetails(ctx)
	case 5:
		return false, s.deleteProject(ctx)
	default:
		s.println("\n" + s.styles.Warning.Render(
			fmt.Sprintf("%d is not a valid selection. Try again.", *selection)))
		return false, nil
	}
}

func (s *Session) exitMenu() {
	s.println("Exiting the menu.")
}

// reportError prints err and logs it at a level matching its kind.
func (s *Session) reportError(err error) {
	s.println("\n" + s.styles.Error.Render("Error: "+err.Error()+" Try again."))

	var pe *ParseError
	switch {
	case errors.As(err, &pe):
		s.logger.Warn("invalid input", zap.String("input", pe.Input), zap.String("kind", pe.Kind))
	case errors.Is(err, service.ErrProjectNotFound), errors.Is(err, service.ErrInvalidDifficulty):
		s.logger.Warn("project operation rejected", zap.Error(err))
	default:
		s.logger.Error("project operation failed", zap.Error(err))
	}
}

func (s *Session) printOperations() {
	s.println("\n" + s.styles.Header.Render("These are the available selections. Press the Enter key to quit:"))
	for _, line := range operations {
		s.println("  " + s.styles.MenuItem.Render(line))
	}

	if s.current == nil {
		s.println("\n" + s.styles.Dimmed.Render("You are not working with a project."))
	} else {
		s.println("\nYou are working with project: " + s.describe(*s.current))
	}
}

// describe renders every field of p with the name and difficulty styled.
func (s *Session) describe(p model.Project) string {
	difficulty := model.FormatInt(p.Difficulty)
	if p.Difficulty != nil {
		difficulty = s.styles.DifficultyStyle(*p.Difficulty).Render(difficulty)
	}
	return fmt.Sprintf(
		"ID=%d, name=%s, estimatedHours=%s, actualHours=%s, difficulty=%s, notes=%s",
		p.ID, s.styles.Current.Render(p.Name),
		model.FormatHours(p.EstimatedHours), model.FormatHours(p.ActualHours),
		difficulty, model.FormatString(p.Notes),
	)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// readLine prints prompt and returns the raw line entered.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt+": ")

	// Lines have no length limit; notes are free text.
	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", &inputError{err: err}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) readString(prompt string) (*string, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return nil, err
	}
	return ParseString(line), nil
}

func (s *Session) readInt(prompt string) (*int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return nil, err
	}
	return ParseInt(line)
}

func (s *Session) readDecimal(prompt string) (decimal.NullDecimal, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return ParseDecimal(line)
}
