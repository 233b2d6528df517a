package handlers

import (
	"github.com/gofiber/fiber/v2"

	"yt-transcript/services/transcript"
)

type TranscriptHandler struct {
	service transcript.Service
}

func NewTranscriptHandler(service transcript.Service) *TranscriptHandler {
	return &TranscriptHandler{service: service}
}

// Get handles GET /api/transcript?url=...&output=json|srt|text.
func (h *TranscriptHandler) Get(c *fiber.Ctx) error {
	result, err := h.service.Get(c.Context(), c.Query("url"), c.Query("output"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	return c.Send(result.Body)
}

func Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello, World!"})
}

func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
