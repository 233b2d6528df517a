package handlers

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"yt-transcript/errors"
)

// ErrorHandler maps pipeline failures to HTTP status plus a JSON
// {error, description} body. Internal failures log their full detail
// and go to the reporting sink; the client only ever sees the generic
// description.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	description := "An unexpected error occurred"

	switch e := err.(type) {
	case *errors.AppError:
		code = e.Code
		description = e.Message
	case *fiber.Error:
		code = e.Code
		description = e.Message
	}

	logrus.WithFields(logrus.Fields{
		"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     code,
		"error":      err,
	}).Error("Request error")

	label := http.StatusText(code)
	if code == fiber.StatusTooManyRequests {
		label = "Rate limit exceeded"
	}

	if code >= fiber.StatusInternalServerError {
		// No-op unless a DSN was configured at startup.
		sentry.CaptureException(err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error":       label,
		"description": description,
	})
}
