package youtube

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// URLResolver maps arbitrary YouTube URLs to canonical video IDs.
type URLResolver struct{}

func NewResolver() *URLResolver {
	return &URLResolver{}
}

func (r *URLResolver) Resolve(rawURL string) (string, error) {
	return ExtractVideoID(rawURL)
}

// ExtractVideoID resolves a YouTube URL to the platform's canonical
// 11-character video identifier. Supported shapes: watch?v=, youtu.be/,
// shorts/, embed/, live/ and the legacy /v/ path.
func ExtractVideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", errors.Wrap(err, "parsing URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errors.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		return validateID(strings.TrimPrefix(u.Path, "/"))
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		// fall through to path handling below
	default:
		return "", errors.Errorf("unsupported host %q", u.Hostname())
	}

	if u.Path == "/watch" {
		return validateID(u.Query().Get("v"))
	}

	for _, prefix := range []string{"/shorts/", "/embed/", "/live/", "/v/"} {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			id, _, _ := strings.Cut(rest, "/")
			return validateID(id)
		}
	}

	return "", errors.Errorf("no video ID in URL path %q", u.Path)
}

func validateID(id string) (string, error) {
	if !videoIDPattern.MatchString(id) {
		return "", errors.Errorf("invalid video ID %q", id)
	}
	return id, nil
}
