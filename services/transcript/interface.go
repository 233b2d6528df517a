package transcript

import (
	"context"
	"time"

	"yt-transcript/models"
)

// Resolver maps an arbitrary video URL to the platform's canonical
// video identifier.
type Resolver interface {
	Resolve(rawURL string) (string, error)
}

// Fetcher retrieves the ordered transcript segments for a video ID.
// Implementations signal the "no transcript" condition with
// youtube.ErrTranscriptUnavailable so it can be told apart from
// transport failures.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (models.Transcript, error)
}

// Result is a ready-to-send response body with its content type.
type Result struct {
	VideoID     string
	Body        []byte
	ContentType string
}

type Service interface {
	// Get runs the full pipeline: validate parameters, resolve the
	// video ID, fetch the transcript and serialize it.
	Get(ctx context.Context, rawURL, output string) (*Result, error)
}

type Config struct {
	// FetchTimeout bounds the external transcript retrieval.
	FetchTimeout time.Duration
}
