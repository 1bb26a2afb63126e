package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/artem13815/rolepanel/api/http/handlers"
	"github.com/artem13815/rolepanel/api/http/middleware"
	"github.com/artem13815/rolepanel/api/http/views"
	"github.com/artem13815/rolepanel/pkg/user"
)

// NewApp returns a Fiber app with the HTML views and the middleware every
// deployment needs. Callers add optional middleware (metrics, access log) before Register.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "rolepanel",
		Views:        views.New(),
		UnescapePath: true,
	})
	app.Use(recover.New())
	app.Use(middleware.NewErrorLogger())
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, session fiber.Handler, auth *handlers.AuthHandler, pages *handlers.PageHandler, users *handlers.UserHandler, health *handlers.HealthHandler) {
	// Probes stay outside session resolution.
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Use(session)

	anyone := middleware.RequireLevel()
	admin := middleware.RequireLevel(user.LevelAdmin)
	staff := middleware.RequireLevel(user.LevelAdmin, user.LevelOperator)

	app.Get("/login", auth.LoginForm)
	app.Post("/login", auth.Login)
	app.Get("/logout", anyone, auth.Logout)

	app.Get("/", middleware.RequireLevel(user.LevelPlayer), pages.Index)
	app.Get("/admin", admin, pages.Admin)
	app.Get("/operator", middleware.RequireLevel(user.LevelOperator), pages.Operator)

	api := app.Group("/api")
	api.Get("/get_users", staff, users.List)
	api.Get("/add_user", admin, users.AddForm)
	api.Post("/post_user", admin, users.Create)
	api.Get("/edit_user_form/:username", admin, users.EditForm)
	api.Post("/edit_user/:username", admin, users.Update)
	api.Get("/delete_user_form/:username", admin, users.DeleteForm)
	api.Post("/delete_user/:username", admin, users.Delete)
}
