package segmentation

import (
	"context"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
)

// Detector computes shot boundaries for a local video file. It is a
// black box returning raw boundary timestamps in seconds; this package
// only packages its output, never interprets how it was computed.
type Detector interface {
	DetectBoundaries(ctx context.Context, videoPath string) ([]float64, error)
}

// Prober returns a video's total duration in seconds
type Prober interface {
	Duration(ctx context.Context, videoPath string) (float64, error)
}

// Result pairs the detected shots with the video's total duration
type Result struct {
	Shots    []models.Shot
	Duration float64
}

// Service defines the interface for on-demand shot segmentation
type Service interface {
	// Segment computes the shot list and duration for an ingested video.
	// Shots are recomputed per call and never persisted.
	Segment(ctx context.Context, videoID string) (*Result, error)
}
