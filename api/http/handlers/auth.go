package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/artem13815/rolepanel/api/http/middleware"
	"github.com/artem13815/rolepanel/api/http/presenter"
	"github.com/artem13815/rolepanel/pkg/auth"
)

const invalidLoginMessage = "Invalid username or password"

type AuthHandler struct {
	useCase auth.UseCase
	cookie  middleware.SessionCookie
}

func NewAuthHandler(useCase auth.UseCase, cookie middleware.SessionCookie) *AuthHandler {
	return &AuthHandler{useCase: useCase, cookie: cookie}
}

// LoginForm renders the login page.
// @Summary Login form
// @Tags    auth
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router  /login [get]
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": "Log in",
		"Flash": popFlash(c),
	})
}

// Login checks the submitted credentials and starts a session.
// @Summary Login
// @Tags    auth
// @Accept  x-www-form-urlencoded
// @Param   username formData string true "username"
// @Param   password formData string true "password"
// @Success 302 "redirect to the level's home page, or back to /login with a flash message"
// @Failure 500 {object} presenter.FailureResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	result, err := h.useCase.Login(c.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			log.Infof("failed login for %q from %s", username, c.IP())
			setFlash(c, invalidLoginMessage)
			return c.Redirect("/login")
		}
		return presenter.Failure(c, http.StatusInternalServerError, err)
	}

	h.cookie.Set(c, result.Session)
	log.Infof("user %q logged in as %s", result.Principal.Username, result.Principal.Level)
	return c.Redirect(result.Principal.Level.HomePath())
}

// Logout revokes the current session.
// @Summary Logout
// @Tags    auth
// @Success 302 "redirect to /login"
// @Router  /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := h.cookie.Read(c); token != "" {
		if err := h.useCase.Logout(c.Context(), token); err != nil && !errors.Is(err, auth.ErrInvalidSession) {
			return presenter.Failure(c, http.StatusInternalServerError, err)
		}
	}
	h.cookie.Clear(c)
	return c.Redirect("/login")
}
