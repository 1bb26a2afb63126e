package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/rolepanel/api/http/presenter"
	"github.com/artem13815/rolepanel/pkg/health"
)

const readinessTimeout = time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

// Health: process is up.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}

// Ready: every storage dependency answers a ping.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "ready"})
}
