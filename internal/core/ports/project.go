package ports

import (
	"context"
	"time"

	"github.com/pulsemark/agency-platform/internal/core/domain"
)

// ListProjectsFilter carries all query parameters for listing projects.
// ClientID is always enforced by the service layer for client-scoped roles.
type ListProjectsFilter struct {
	ClientID string // empty = no filter (agency); non-empty = scoped to client
	Status   string // optional: filter by project status
	Search   string // optional: partial match on project name
	Page     int    // 1-based
	Limit    int    // max rows per page (capped at 100 by service)
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	// FindByID retrieves a project. When clientID is non-empty, the lookup
	// is additionally filtered by client_id so client users cannot read
	// other clients' projects.
	FindByID(ctx context.Context, id string, clientID string) (*domain.Project, error)
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, int64, error)
	Update(ctx context.Context, p *domain.Project) error
}

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	ClientID    string
	ClientName  string
	Name        string
	Description string
	Budget      float64
	Deadline    time.Time
}

// UpdateProjectInput carries a partial project update. Nil fields are left
// untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Budget      *float64
	Deadline    *time.Time
	Status      *domain.ProjectStatus
}

// ListProjectsResult is returned by ListProjects.
type ListProjectsResult struct {
	Items      []*domain.Project
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProjectService defines use-case operations for projects. Every operation
// receives the acting principal's role and client scope so access control is
// enforced in one place.
type ProjectService interface {
	CreateProject(ctx context.Context, role domain.Role, clientID string, input CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, role domain.Role, clientID string, id string) (*domain.Project, error)
	ListProjects(ctx context.Context, role domain.Role, clientID string, filter ListProjectsFilter) (*ListProjectsResult, error)
	UpdateProject(ctx context.Context, role domain.Role, clientID string, id string, input UpdateProjectInput) (*domain.Project, error)
}
