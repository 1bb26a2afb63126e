package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// FailureResponse carries storage error details back to the client.
type FailureResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Failure(c *fiber.Ctx, status int, err error) error {
	return JSON(c, status, FailureResponse{Error: err.Error()})
}

func Text(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).SendString(message)
}
