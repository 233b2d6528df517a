package transcript

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"yt-transcript/errors"
	"yt-transcript/formats"
	"yt-transcript/validation"
	"yt-transcript/youtube"
)

type service struct {
	resolver  Resolver
	fetcher   Fetcher
	validator *validation.Validator
	config    Config
	log       *logrus.Entry
}

func NewService(resolver Resolver, fetcher Fetcher, validator *validation.Validator, config Config) Service {
	return &service{
		resolver:  resolver,
		fetcher:   fetcher,
		validator: validator,
		config:    config,
		log:       logrus.WithField("component", "transcript"),
	}
}

func (s *service) Get(ctx context.Context, rawURL, output string) (*Result, error) {
	const op = "TranscriptService.Get"

	format, err := s.validator.ValidateRequest(rawURL, output)
	if err != nil {
		return nil, err
	}

	videoID, err := s.resolver.Resolve(rawURL)
	if err != nil {
		// The cause stays in the logs; clients see one failure shape
		// regardless of why resolution failed.
		s.log.WithFields(logrus.Fields{
			"url":   rawURL,
			"error": err,
		}).Warn("Failed to resolve video URL")
		return nil, errors.InvalidInput(op, err, "Invalid YouTube URL")
	}

	if s.config.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.FetchTimeout)
		defer cancel()
	}

	transcript, err := s.fetcher.Fetch(ctx, videoID)
	if err != nil {
		if pkgerrors.Is(err, youtube.ErrTranscriptUnavailable) {
			s.log.WithField("video_id", videoID).Warn("Transcript not available")
			return nil, errors.NotFound(op, err, "Transcript not available for this video")
		}
		s.log.WithFields(logrus.Fields{
			"video_id": videoID,
			"error":    err,
		}).Error("Transcript fetch failed")
		return nil, errors.Internal(op, err, "An unexpected error occurred")
	}

	body, err := formats.Format(transcript, format)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"video_id": videoID,
			"format":   format,
			"error":    err,
		}).Error("Transcript serialization failed")
		return nil, errors.Internal(op, err, "An unexpected error occurred")
	}

	s.log.WithFields(logrus.Fields{
		"video_id": videoID,
		"format":   format,
		"segments": len(transcript),
	}).Info("Fetched transcript")

	return &Result{
		VideoID:     videoID,
		Body:        body,
		ContentType: format.ContentType(),
	}, nil
}

var _ Resolver = (*youtube.URLResolver)(nil)
var _ Fetcher = (*youtube.Client)(nil)
