package validation

import (
	"yt-transcript/errors"
	"yt-transcript/models"
)

// Validator checks incoming query parameters before any resolution or
// fetch work happens. Pure string checks, no side effects.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRequest validates the raw url and output query parameters and
// returns the requested output format.
func (v *Validator) ValidateRequest(rawURL, output string) (models.OutputFormat, error) {
	const op = "Validator.ValidateRequest"

	if rawURL == "" {
		return "", errors.InvalidInput(op, nil, "Missing YouTube URL")
	}

	format, err := models.ParseFormat(output)
	if err != nil {
		return "", errors.InvalidInput(op, err, "Invalid output format")
	}

	return format, nil
}
