package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/rolepanel/api/http/middleware"
	"github.com/artem13815/rolepanel/api/http/presenter"
	"github.com/artem13815/rolepanel/pkg/user"
)

// PageHandler serves the per-level landing pages.
type PageHandler struct {
	users user.UseCase
}

func NewPageHandler(users user.UseCase) *PageHandler { return &PageHandler{users: users} }

// Index is the player's home page.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, "index", "Home", false)
}

// Admin is the admin panel listing every account with edit/delete actions.
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	return h.render(c, "admin", "Admin panel", true)
}

// Operator is the read-only operator panel.
func (h *PageHandler) Operator(c *fiber.Ctx) error {
	return h.render(c, "operator", "Operator panel", true)
}

func (h *PageHandler) render(c *fiber.Ctx, page, title string, withUsers bool) error {
	p, _ := middleware.CurrentPrincipal(c)
	current, err := h.users.Get(c.Context(), p.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			// account removed while the session was alive
			return c.Redirect("/logout")
		}
		return presenter.Failure(c, http.StatusInternalServerError, err)
	}
	bind := fiber.Map{
		"Title":     title,
		"Principal": p,
		"User":      current,
		"Manage":    p.Level == user.LevelAdmin,
	}
	if withUsers {
		all, err := h.users.List(c.Context())
		if err != nil {
			return presenter.Failure(c, http.StatusInternalServerError, err)
		}
		bind["Users"] = all
	}
	return c.Render(page, bind)
}
