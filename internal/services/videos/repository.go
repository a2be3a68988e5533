package videos

import (
	"context"
	"errors"
	"fmt"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new video catalog repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateVideo stores catalog metadata for a freshly ingested video
func (r *RepositoryImpl) CreateVideo(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

// GetVideoByVideoID retrieves a video's catalog metadata by its identity
func (r *RepositoryImpl) GetVideoByVideoID(ctx context.Context, videoID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Where("video_id = ?", videoID).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("video not found")
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}
