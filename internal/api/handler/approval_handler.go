package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsemark/agency-platform/internal/api/metrics"
	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// ApprovalHandler handles HTTP requests for the content approval workflow.
type ApprovalHandler struct {
	service ports.ApprovalService
}

func NewApprovalHandler(service ports.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

type createApprovalRequest struct {
	ClientID    string `json:"client_id"    validate:"required"`
	ProjectID   string `json:"project_id"`
	ContentType string `json:"content_type" validate:"required,oneof=social_post blog_post"`
	Title       string `json:"title"        validate:"required"`
	Body        string `json:"body"`
}

type decideApprovalRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected changes_requested"`
	Note     string `json:"note"`
}

type listApprovalsResponse struct {
	Data []*domain.Approval `json:"data"`
}

// Create handles POST /v1/approvals.
//
// @Summary      Submit content for approval
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApprovalRequest  true  "Content to review"
// @Success      201   {object}  domain.Approval
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/approvals [post]
func (h *ApprovalHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	approval, err := h.service.CreateApproval(c.Request().Context(), p.Role, p.ClientID, ports.CreateApprovalInput{
		ClientID:    req.ClientID,
		ProjectID:   req.ProjectID,
		ContentType: domain.ContentType(req.ContentType),
		Title:       req.Title,
		Body:        req.Body,
		RequestedBy: p.UserID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, approval)
}

// List handles GET /v1/approvals with an optional status query parameter.
//
// @Summary      List approval requests
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Filter by client (agency roles only)"
// @Param        status     query     string  false  "Filter by status"
// @Success      200        {object}  listApprovalsResponse
// @Failure      401        {object}  map[string]string
// @Router       /v1/approvals [get]
func (h *ApprovalHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	approvals, err := h.service.ListApprovals(c.Request().Context(), p.Role, p.ClientID, ports.ListApprovalsFilter{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listApprovalsResponse{Data: approvals})
}

// Decide handles POST /v1/approvals/:id/decision.
//
// @Summary      Record a decision on a pending approval
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Approval ID"
// @Param        body  body      decideApprovalRequest  true  "Decision and optional note"
// @Success      200   {object}  domain.Approval
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/approvals/{id}/decision [post]
func (h *ApprovalHandler) Decide(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req decideApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	approval, err := h.service.Decide(c.Request().Context(), p.Role, p.ClientID, ports.DecideApprovalInput{
		ApprovalID: c.Param("id"),
		Decision:   domain.ApprovalStatus(req.Decision),
		ReviewerID: p.UserID,
		Note:       req.Note,
	})
	if err != nil {
		return err
	}

	metrics.ApprovalsDecidedTotal.WithLabelValues(req.Decision).Inc()
	return c.JSON(http.StatusOK, approval)
}
