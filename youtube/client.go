package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"yt-transcript/models"
)

// ErrTranscriptUnavailable signals that the video has no usable caption
// track: captions are disabled, missing, or the video does not exist.
var ErrTranscriptUnavailable = errors.New("transcript unavailable")

const (
	watchURL  = "https://www.youtube.com/watch?v="
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

type Config struct {
	Timeout           time.Duration
	RequestsPerSecond int
	Languages         []string
}

// Client fetches transcripts from YouTube's caption endpoints. Outbound
// requests are bounded by the configured timeout and throttled so a
// burst of inbound traffic cannot hammer the upstream.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	languages []string
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"en"}
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestsPerSecond),
		languages: cfg.Languages,
	}
}

// Fetch returns the ordered transcript segments for a video ID.
func (c *Client) Fetch(ctx context.Context, videoID string) (models.Transcript, error) {
	tracks, err := c.listCaptionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track := selectTrack(tracks, c.languages)
	if track == nil {
		return nil, ErrTranscriptUnavailable
	}

	return c.fetchTrack(ctx, track.BaseURL)
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

func (c *Client) listCaptionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := c.get(ctx, watchURL+videoID)
	if err != nil {
		return nil, err
	}
	return parseCaptionTracks(body)
}

// parseCaptionTracks extracts the caption track list embedded in the
// watch page's player response.
func parseCaptionTracks(body []byte) ([]captionTrack, error) {
	const marker = `"captionTracks":`
	idx := strings.Index(string(body), marker)
	if idx < 0 {
		return nil, ErrTranscriptUnavailable
	}

	var tracks []captionTrack
	dec := json.NewDecoder(strings.NewReader(string(body[idx+len(marker):])))
	if err := dec.Decode(&tracks); err != nil {
		return nil, errors.Wrap(err, "decoding caption track list")
	}
	if len(tracks) == 0 {
		return nil, ErrTranscriptUnavailable
	}
	return tracks, nil
}

// selectTrack picks the first preferred language, favoring manually
// created captions over auto-generated ("asr") ones, and falls back to
// whatever track exists.
func selectTrack(tracks []captionTrack, languages []string) *captionTrack {
	for _, lang := range languages {
		var auto *captionTrack
		for i := range tracks {
			if !strings.EqualFold(tracks[i].LanguageCode, lang) {
				continue
			}
			if tracks[i].Kind != "asr" {
				return &tracks[i]
			}
			if auto == nil {
				auto = &tracks[i]
			}
		}
		if auto != nil {
			return auto
		}
	}
	if len(tracks) > 0 {
		return &tracks[0]
	}
	return nil
}

// json3 caption payload shape.
type captionEvents struct {
	Events []struct {
		StartMs    int64 `json:"tStartMs"`
		DurationMs int64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

func (c *Client) fetchTrack(ctx context.Context, baseURL string) (models.Transcript, error) {
	body, err := c.get(ctx, baseURL+"&fmt=json3")
	if err != nil {
		return nil, err
	}
	return parseCaptionEvents(body)
}

// parseCaptionEvents converts a json3 caption payload into ordered
// transcript segments, dropping empty filler events.
func parseCaptionEvents(body []byte) (models.Transcript, error) {
	var payload captionEvents
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decoding caption payload")
	}

	transcript := make(models.Transcript, 0, len(payload.Events))
	for _, ev := range payload.Events {
		var text strings.Builder
		for _, seg := range ev.Segs {
			text.WriteString(seg.UTF8)
		}
		line := strings.TrimSpace(text.String())
		if line == "" {
			continue
		}
		transcript = append(transcript, models.TranscriptSegment{
			Text:     line,
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
		})
	}

	if len(transcript) == 0 {
		return nil, ErrTranscriptUnavailable
	}
	return transcript, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "waiting for request slot")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting "+url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}
	return body, nil
}
