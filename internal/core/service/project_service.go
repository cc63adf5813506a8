package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

const maxPageLimit = 100

// ProjectService implements project CRUD with client scoping enforced in one
// place: client-side roles only ever see their own client's projects.
type ProjectService struct {
	repo ports.ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

// scope returns the effective client filter for the acting principal. Agency
// roles pass any requested filter through; client roles are pinned to their
// own client regardless of what was requested.
func scope(role domain.Role, principalClientID, requested string) string {
	if domain.IsClientRole(role) {
		return principalClientID
	}
	return requested
}

func (s *ProjectService) CreateProject(ctx context.Context, role domain.Role, clientID string, input ports.CreateProjectInput) (*domain.Project, error) {
	if domain.IsClientRole(role) && input.ClientID != clientID {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:          newID("prj"),
		ClientID:    input.ClientID,
		ClientName:  input.ClientName,
		Name:        input.Name,
		Description: input.Description,
		Status:      domain.ProjectPlanning,
		Budget:      input.Budget,
		Deadline:    input.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.log.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.log.Info().Str("project_id", project.ID).Str("client_id", project.ClientID).Msg("project created")
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, role domain.Role, clientID string, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id, scope(role, clientID, ""))
}

func (s *ProjectService) ListProjects(ctx context.Context, role domain.Role, clientID string, filter ports.ListProjectsFilter) (*ports.ListProjectsResult, error) {
	filter.ClientID = scope(role, clientID, filter.ClientID)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListProjectsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, role domain.Role, clientID string, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id, scope(role, clientID, ""))
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != project.Status {
		if !project.Status.CanTransitionTo(*input.Status) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, project.Status, *input.Status)
		}
		project.Status = *input.Status
	}
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.Deadline != nil {
		project.Deadline = *input.Deadline
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		s.log.Error().Err(err).Str("project_id", id).Msg("failed to update project")
		return nil, err
	}

	s.log.Info().Str("project_id", id).Str("status", string(project.Status)).Msg("project updated")
	return project, nil
}

// newID returns a unique identifier in the format <prefix>_XXXXXXXX.
func newID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s_%08X", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s_%08X", prefix, b)
}
