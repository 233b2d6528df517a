package models

import (
	"fmt"
	"strings"
)

// TranscriptSegment is one timed unit of transcript text.
type TranscriptSegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is an ordered sequence of segments in playback order.
// Ordering is meaningful and must survive every formatter.
type Transcript []TranscriptSegment

// OutputFormat selects which serializer consumes a transcript.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatSRT  OutputFormat = "srt"
	FormatText OutputFormat = "text"
)

// ParseFormat maps the output query parameter to an OutputFormat.
// Matching is case-insensitive and an empty value defaults to JSON.
func ParseFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatJSON, nil
	}
	switch OutputFormat(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatSRT:
		return FormatSRT, nil
	case FormatText:
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// ContentType returns the Content-Type header value for the format.
func (f OutputFormat) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/plain"
}
