package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/artem13815/rolepanel/api/http/middleware"
	"github.com/artem13815/rolepanel/api/http/presenter"
	"github.com/artem13815/rolepanel/pkg/user"
)

const userNotFoundText = "User not found"

type UserHandler struct {
	uc user.UseCase
}

func NewUserHandler(uc user.UseCase) *UserHandler { return &UserHandler{uc: uc} }

// List returns every account.
// @Summary List users
// @Tags    users
// @Produce json
// @Success 200 {array} user.User
// @Failure 500 {object} presenter.FailureResponse
// @Router  /api/get_users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.Context())
	if err != nil {
		return presenter.Failure(c, http.StatusInternalServerError, err)
	}
	return presenter.JSON(c, http.StatusOK, users)
}

// AddForm renders the add-user form.
// @Summary Add user form
// @Tags    users
// @Produce html
// @Router  /api/add_user [get]
func (h *UserHandler) AddForm(c *fiber.Ctx) error {
	return c.Render("add_user", h.formBinding(c, "Add user", user.User{Level: user.LevelPlayer}))
}

// Create stores a new account from the add-user form.
// @Summary Create user
// @Tags    users
// @Accept  x-www-form-urlencoded
// @Param   name     formData string true "display name"
// @Param   username formData string true "unique username"
// @Param   password formData string true "password"
// @Param   level    formData string true "admin, operator or player"
// @Success 302 "redirect to /admin"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.FailureResponse
// @Router  /api/post_user [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	u, err := h.uc.Create(c.Context(), draftFromForm(c))
	if err != nil {
		var verr user.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Failure(c, http.StatusInternalServerError, err)
	}
	log.Infof("user %q (%s) created", u.Username, u.Level)
	return c.Redirect("/admin")
}

// EditForm renders the edit form for one account.
// @Summary Edit user form
// @Tags    users
// @Produce html
// @Param   username path string true "username"
// @Failure 404 {string} string "User not found"
// @Router  /api/edit_user_form/{username} [get]
func (h *UserHandler) EditForm(c *fiber.Ctx) error {
	return h.renderFor(c, "edit_user", "Edit user")
}

// Update overwrites name, password and level. Username and id never change.
// @Summary Edit user
// @Tags    users
// @Accept  x-www-form-urlencoded
// @Param   username path     string true "username"
// @Param   name     formData string true "display name"
// @Param   password formData string true "password"
// @Param   level    formData string true "admin, operator or player"
// @Success 302 "redirect to /admin"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.FailureResponse
// @Router  /api/edit_user/{username} [post]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	username := c.Params("username")
	err := h.uc.Update(c.Context(), username, draftFromForm(c))
	if err != nil {
		var verr user.ErrValidation
		switch {
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, notFoundMessage(username))
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		default:
			return presenter.Failure(c, http.StatusInternalServerError, err)
		}
	}
	return c.Redirect("/admin")
}

// DeleteForm renders the delete confirmation for one account.
// @Summary Delete user form
// @Tags    users
// @Produce html
// @Param   username path string true "username"
// @Failure 404 {string} string "User not found"
// @Router  /api/delete_user_form/{username} [get]
func (h *UserHandler) DeleteForm(c *fiber.Ctx) error {
	return h.renderFor(c, "delete_user", "Delete user")
}

// Delete removes an account.
// @Summary Delete user
// @Tags    users
// @Param   username path string true "username"
// @Success 302 "redirect to /admin"
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.FailureResponse
// @Router  /api/delete_user/{username} [post]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.uc.Delete(c.Context(), username); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, notFoundMessage(username))
		}
		return presenter.Failure(c, http.StatusInternalServerError, err)
	}
	log.Infof("user %q deleted", username)
	return c.Redirect("/admin")
}

func (h *UserHandler) renderFor(c *fiber.Ctx, page, title string) error {
	u, err := h.uc.Get(c.Context(), c.Params("username"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Text(c, http.StatusNotFound, userNotFoundText)
		}
		return presenter.Failure(c, http.StatusInternalServerError, err)
	}
	return c.Render(page, h.formBinding(c, title, u))
}

func (h *UserHandler) formBinding(c *fiber.Ctx, title string, u user.User) fiber.Map {
	p, _ := middleware.CurrentPrincipal(c)
	return fiber.Map{
		"Title":     title,
		"Principal": p,
		"User":      u,
		"Levels":    user.Levels,
		"Selected":  u.Level,
	}
}

func draftFromForm(c *fiber.Ctx) user.Draft {
	return user.Draft{
		Name:     c.FormValue("name"),
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
		Level:    c.FormValue("level"),
	}
}

func notFoundMessage(username string) string {
	return fmt.Sprintf("User %s not found.", username)
}
