package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// DashboardHandler serves the aggregated read models behind the dashboard.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func queryLimit(c echo.Context, def int) int {
	n, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Stats handles GET /v1/dashboard/stats.
//
// @Summary      Dashboard headline stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	stats, err := h.service.GetDashboardStats(c.Request().Context(), p.Role, p.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// RecentClients handles GET /v1/dashboard/clients.
//
// @Summary      Most recently active clients
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 5)"
// @Success      200    {array}   domain.Client
// @Failure      403    {object}  map[string]string
// @Failure      503    {object}  map[string]string
// @Router       /v1/dashboard/clients [get]
func (h *DashboardHandler) RecentClients(c echo.Context) error {
	clients, err := h.service.GetRecentClients(c.Request().Context(), queryLimit(c, 5))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Activities handles GET /v1/dashboard/activities.
//
// @Summary      Recent campaign activity feed
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 10)"
// @Success      200    {array}   ports.CampaignActivity
// @Failure      403    {object}  map[string]string
// @Failure      503    {object}  map[string]string
// @Router       /v1/dashboard/activities [get]
func (h *DashboardHandler) Activities(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	activities, err := h.service.GetCampaignActivities(c.Request().Context(), p.Role, p.ClientID, queryLimit(c, 10))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Revenue handles GET /v1/dashboard/revenue.
//
// @Summary      Monthly revenue series
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        months  query     int  false  "Number of months (default 6)"
// @Success      200     {array}   ports.RevenuePoint
// @Failure      403     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /v1/dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c echo.Context) error {
	months, err := strconv.Atoi(c.QueryParam("months"))
	if err != nil || months <= 0 {
		months = 6
	}

	points, err := h.service.GetRevenueData(c.Request().Context(), months)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, points)
}

// Deadlines handles GET /v1/dashboard/deadlines.
//
// @Summary      Upcoming project deadlines
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 5)"
// @Success      200    {array}   ports.Deadline
// @Failure      401    {object}  map[string]string
// @Failure      503    {object}  map[string]string
// @Router       /v1/dashboard/deadlines [get]
func (h *DashboardHandler) Deadlines(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	deadlines, err := h.service.GetUpcomingDeadlines(c.Request().Context(), p.Role, p.ClientID, queryLimit(c, 5))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deadlines)
}

// Notifications handles GET /v1/dashboard/notifications.
//
// @Summary      The caller's notification inbox, newest first
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Notification
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard/notifications [get]
func (h *DashboardHandler) Notifications(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.GetNotifications(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifications)
}
