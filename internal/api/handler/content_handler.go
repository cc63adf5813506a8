package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// ContentHandler serves the campaign/content read models and messaging.
type ContentHandler struct {
	service ports.ContentService
	users   ports.UserRepository
}

func NewContentHandler(service ports.ContentService, users ports.UserRepository) *ContentHandler {
	return &ContentHandler{service: service, users: users}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Body        string `json:"body"         validate:"required"`
}

// Clients handles GET /v1/clients.
//
// @Summary      List the full client roster
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Client
// @Failure      403  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/clients [get]
func (h *ContentHandler) Clients(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Campaigns handles GET /v1/campaigns.
//
// @Summary      List campaigns visible to the caller
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Campaign
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/campaigns [get]
func (h *ContentHandler) Campaigns(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	campaigns, err := h.service.ListCampaigns(c.Request().Context(), p.Role, p.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaigns)
}

// SocialPosts handles GET /v1/content/social.
//
// @Summary      List social posts visible to the caller
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.SocialPost
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/content/social [get]
func (h *ContentHandler) SocialPosts(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListSocialPosts(c.Request().Context(), p.Role, p.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// BlogPosts handles GET /v1/content/blog.
//
// @Summary      List blog posts visible to the caller
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.BlogPost
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/content/blog [get]
func (h *ContentHandler) BlogPosts(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	posts, err := h.service.ListBlogPosts(c.Request().Context(), p.Role, p.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Invoices handles GET /v1/invoices.
//
// @Summary      List invoices visible to the caller
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Invoice
// @Failure      403  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/invoices [get]
func (h *ContentHandler) Invoices(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	invoices, err := h.service.ListInvoices(c.Request().Context(), p.Role, p.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, invoices)
}

// Messages handles GET /v1/messages.
//
// @Summary      List the caller's message thread
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Message
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /v1/messages [get]
func (h *ContentHandler) Messages(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	messages, err := h.service.ListMessages(c.Request().Context(), p.Role, p.ClientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// SendMessage handles POST /v1/messages.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Recipient and message body"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/messages [post]
func (h *ContentHandler) SendMessage(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The message service needs the full sender record for attribution; the
	// stored role wins over possibly stale token claims.
	sender, err := h.users.FindByID(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}

	msg, err := h.service.SendMessage(c.Request().Context(), sender, req.RecipientID, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}
