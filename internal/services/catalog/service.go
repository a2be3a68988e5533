package catalog

import (
	"context"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/ledger"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/videos"
)

// Service defines the interface for the cross-video catalog view
type Service interface {
	// ListVideos enumerates every video with an existing ledger and its
	// annotation count. Read-only; a single unreadable ledger is
	// omitted rather than failing the listing.
	ListVideos(ctx context.Context) ([]models.VideoSummary, error)
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	ledgers    ledger.Store
	repository videos.Repository
}

// NewService creates a new catalog service
func NewService(ledgers ledger.Store, repository videos.Repository) Service {
	return &ServiceImpl{
		ledgers:    ledgers,
		repository: repository,
	}
}

// ListVideos aggregates per-video ledgers into a single listing.
// The ledger store decides which videos exist; catalog metadata only
// enriches rows that have it.
func (s *ServiceImpl) ListVideos(ctx context.Context) ([]models.VideoSummary, error) {
	entries, err := s.ledgers.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.VideoSummary, 0, len(entries))
	for _, entry := range entries {
		summary := models.VideoSummary{
			VideoID:         entry.VideoID,
			AnnotationCount: entry.Count,
		}
		if video, err := s.repository.GetVideoByVideoID(ctx, entry.VideoID); err == nil {
			summary.Title = video.Title
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
