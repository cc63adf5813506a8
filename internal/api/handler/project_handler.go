package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	ClientID    string    `json:"client_id"   validate:"required"`
	ClientName  string    `json:"client_name" validate:"required"`
	Name        string    `json:"name"        validate:"required"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"      validate:"gte=0"`
	Deadline    time.Time `json:"deadline"`
}

type updateProjectRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=planning in_progress review completed cancelled"`
}

type listProjectsResponse struct {
	Data       []*domain.Project  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /v1/projects.
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), p.Role, p.ClientID, ports.CreateProjectInput{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	project, err := h.service.GetProject(c.Request().Context(), p.Role, p.ClientID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List handles GET /v1/projects with optional status, search, and pagination
// query parameters.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client (agency roles only)"
// @Param        status     query     string  false  "Filter by status"
// @Param        search     query     string  false  "Case-insensitive name search"
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  listProjectsResponse
// @Failure      401        {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListProjects(c.Request().Context(), p.Role, p.ClientID, ports.ListProjectsFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listProjectsResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Update handles PATCH /v1/projects/:id with a partial update.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		input.Status = &status
	}

	project, err := h.service.UpdateProject(c.Request().Context(), p.Role, p.ClientID, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}
