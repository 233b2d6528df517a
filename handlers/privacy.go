package handlers

import "github.com/gofiber/fiber/v2"

const privacyPolicyHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Privacy Policy - YouTube Transcript API</title>
</head>
<body>
  <h1>Privacy Policy</h1>
  <p>This service retrieves publicly available transcript data for YouTube
  videos. It does not require user accounts and does not collect personal
  information.</p>
  <h2>Data handling</h2>
  <ul>
    <li>Video URLs submitted to the API are processed in memory and are not
    stored after the request completes.</li>
    <li>Transcripts are fetched on demand and are never persisted.</li>
    <li>Client addresses are counted in memory solely for rate limiting and
    are discarded when the process restarts.</li>
    <li>Server logs may record request metadata for operational purposes.</li>
  </ul>
  <h2>Third parties</h2>
  <p>Transcript data is retrieved from YouTube. Use of this service is also
  subject to YouTube's terms of service.</p>
</body>
</html>
`

// PrivacyPolicy serves the static privacy policy page.
func PrivacyPolicy(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(privacyPolicyHTML)
}
