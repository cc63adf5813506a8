package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// OnboardingHandler persists and serves per-user onboarding answers.
type OnboardingHandler struct {
	service ports.OnboardingService
}

func NewOnboardingHandler(service ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// Save handles POST /v1/onboarding.
//
// @Summary      Save the caller's onboarding answers
// @Tags         onboarding
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  ports.OnboardingData  true  "Onboarding answers"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /v1/onboarding [post]
func (h *OnboardingHandler) Save(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var data ports.OnboardingData
	if err := c.Bind(&data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.Save(c.Request().Context(), p.UserID, data); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Get handles GET /v1/onboarding.
//
// @Summary      Fetch the caller's onboarding answers
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.OnboardingData
// @Failure      401  {object}  map[string]string
// @Router       /v1/onboarding [get]
func (h *OnboardingHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	data, err := h.service.Get(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}
