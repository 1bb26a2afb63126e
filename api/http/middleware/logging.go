package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// NewErrorLogger logs every response with status >= 400 together with its body.
func NewErrorLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		body := string(c.Response().Body())
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
			body = err.Error()
		}
		if status >= fiber.StatusBadRequest {
			log.Errorf("Error in request: %s %s %d - %s", c.Method(), c.Path(), status, body)
		}
		return err
	}
}
