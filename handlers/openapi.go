package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// OpenAPI serves the static OpenAPI 3.1 document for the service. The
// server URL is derived from the inbound request's host, forced to the
// secure scheme.
func OpenAPI(c *fiber.Ctx) error {
	serverURL := strings.Replace(c.BaseURL(), "http://", "https://", 1)

	return c.JSON(fiber.Map{
		"openapi": "3.1.0",
		"info": fiber.Map{
			"title":       "YouTube Transcript API",
			"description": "Retrieves transcript data for YouTube videos.",
			"version":     "v1.0.0",
		},
		"servers": []fiber.Map{
			{"url": serverURL},
		},
		"paths": fiber.Map{
			"/api/transcript": fiber.Map{
				"get": fiber.Map{
					"description": "Get transcript for a specific YouTube video",
					"operationId": "GetYouTubeTranscript",
					"parameters": []fiber.Map{
						{
							"name":        "url",
							"in":          "query",
							"description": "The full URL of the YouTube video",
							"required":    true,
							"schema":      fiber.Map{"type": "string"},
						},
						{
							"name":        "output",
							"in":          "query",
							"description": "Output format: json, srt or text",
							"required":    false,
							"schema": fiber.Map{
								"type":    "string",
								"enum":    []string{"json", "srt", "text"},
								"default": "json",
							},
						},
					},
					"responses": fiber.Map{
						"200": fiber.Map{
							"description": "Successful response",
							"content": fiber.Map{
								"application/json": fiber.Map{
									"schema": fiber.Map{
										"type": "array",
										"items": fiber.Map{
											"type": "object",
											"properties": fiber.Map{
												"text":     fiber.Map{"type": "string"},
												"start":    fiber.Map{"type": "number"},
												"duration": fiber.Map{"type": "number"},
											},
										},
									},
								},
							},
						},
						"400": fiber.Map{"description": "Bad request - Invalid YouTube URL"},
						"404": fiber.Map{"description": "Transcript not available for this video"},
						"429": fiber.Map{"description": "Rate limit exceeded"},
						"500": fiber.Map{"description": "Internal server error"},
					},
				},
			},
		},
		"components": fiber.Map{
			"schemas": fiber.Map{},
		},
	})
}
