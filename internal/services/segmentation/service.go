package segmentation

import (
	"context"
	"sort"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
)

// MediaLocator resolves video identities to local media files
type MediaLocator interface {
	MediaPath(videoID string) string
	MediaExists(videoID string) bool
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	media    MediaLocator
	detector Detector
	prober   Prober
}

// NewService creates a new segmentation service
func NewService(media MediaLocator, detector Detector, prober Prober) Service {
	return &ServiceImpl{
		media:    media,
		detector: detector,
		prober:   prober,
	}
}

// Segment runs the external detector and duration probe for a video.
// Both tools are synchronous blocking calls; failures surface with the
// tool's diagnostic attached and are never retried.
func (s *ServiceImpl) Segment(ctx context.Context, videoID string) (*Result, error) {
	if !s.media.MediaExists(videoID) {
		return nil, apperrors.VideoNotFound(videoID)
	}
	videoPath := s.media.MediaPath(videoID)

	boundaries, err := s.detector.DetectBoundaries(ctx, videoPath)
	if err != nil {
		return nil, asSegmentationError(err)
	}

	duration, err := s.prober.Duration(ctx, videoPath)
	if err != nil {
		return nil, asSegmentationError(err)
	}

	return &Result{
		Shots:    buildShots(boundaries, duration),
		Duration: duration,
	}, nil
}

// buildShots turns raw boundary timestamps into contiguous intervals
// covering [0, duration]. Boundaries outside that range are dropped so
// the result is always monotonically non-decreasing.
func buildShots(boundaries []float64, duration float64) []models.Shot {
	sorted := make([]float64, 0, len(boundaries))
	for _, b := range boundaries {
		if b > 0 && b < duration {
			sorted = append(sorted, b)
		}
	}
	sort.Float64s(sorted)

	shots := make([]models.Shot, 0, len(sorted)+1)
	prev := 0.0
	for _, b := range sorted {
		if b <= prev {
			continue
		}
		shots = append(shots, models.Shot{Start: prev, End: b})
		prev = b
	}
	if duration > prev {
		shots = append(shots, models.Shot{Start: prev, End: duration})
	}
	return shots
}

func asSegmentationError(err error) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.SegmentationFailed(err, "")
}
