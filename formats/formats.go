package formats

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"yt-transcript/models"
)

// Format serializes a transcript in the requested output format. All
// formatters are pure and deterministic: identical segment sequences
// produce byte-identical output.
func Format(transcript models.Transcript, format models.OutputFormat) ([]byte, error) {
	switch format {
	case models.FormatJSON:
		return JSON(transcript)
	case models.FormatSRT:
		return SRT(transcript), nil
	case models.FormatText:
		return Text(transcript), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// JSON serializes the segments as an order-preserving array of
// {text, start, duration} objects.
func JSON(transcript models.Transcript) ([]byte, error) {
	if transcript == nil {
		transcript = models.Transcript{}
	}
	return json.Marshal(transcript)
}

// SRT renders the segments as a SubRip document: a 1-based sequence
// number, a timestamp range, the text, and a blank separator line.
func SRT(transcript models.Transcript) []byte {
	var b strings.Builder
	for i, seg := range transcript {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(seg.Start), srtTimestamp(seg.Start+seg.Duration))
		b.WriteString(seg.Text)
		b.WriteString("\n\n")
	}
	return []byte(b.String())
}

// Text concatenates segment texts one per line, discarding timing.
func Text(transcript models.Transcript) []byte {
	var b strings.Builder
	for _, seg := range transcript {
		b.WriteString(seg.Text)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// srtTimestamp formats seconds as HH:MM:SS,mmm with fixed-width
// zero padding. Mid-second boundaries round down to the millisecond.
func srtTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	ms := int64(math.Floor(seconds * 1000))
	h := ms / 3600000
	m := ms % 3600000 / 60000
	s := ms % 60000 / 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms%1000)
}
