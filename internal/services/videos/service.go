package videos

import (
	"context"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/ledger"
	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
	"github.com/google/uuid"
)

const fallbackTitle = "Untitled Video"

// PublicVideoPrefix is the URL path media files are served under
const PublicVideoPrefix = "/static/videos"

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	videoDir   string
	downloader Downloader
	titles     TitleFetcher
	ledgers    ledger.Store
	repository Repository
}

// NewService creates a new video ingestion service
func NewService(videoDir string, downloader Downloader, titles TitleFetcher, ledgers ledger.Store, repository Repository) Service {
	return &ServiceImpl{
		videoDir:   videoDir,
		downloader: downloader,
		titles:     titles,
		ledgers:    ledgers,
		repository: repository,
	}
}

// Ingest downloads the video, mints its identity, and creates its ledger.
// Validation happens before any side effect: a bad locator downloads nothing.
func (s *ServiceImpl) Ingest(ctx context.Context, locator string) (*IngestResult, error) {
	sourceID, err := extractSourceID(locator)
	if err != nil {
		return nil, err
	}

	// A fresh identity per call, so the same source video can be
	// annotated in multiple independent passes
	videoID := sourceID + "_" + uuid.New().String()
	outputPath := s.MediaPath(videoID)

	if err := os.MkdirAll(s.videoDir, 0755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to create video directory")
	}

	if err := s.downloader.Download(ctx, locator, outputPath); err != nil {
		return nil, err
	}

	// A video without a ledger must not exist, so a failed ledger
	// create aborts the ingest and removes the media file
	if err := s.ledgers.Create(ctx, videoID); err != nil {
		os.Remove(outputPath)
		return nil, err
	}

	title, err := s.titles.Title(ctx, locator)
	if err != nil || title == "" {
		log.Printf("[WARN] Could not fetch title for %s: %v", locator, err)
		title = fallbackTitle
	}

	video := &models.Video{
		VideoID:   videoID,
		SourceURL: locator,
		Title:     title,
		FilePath:  outputPath,
	}
	if err := s.repository.CreateVideo(ctx, video); err != nil {
		// Catalog metadata is enrichment; the ledger is the source of truth
		log.Printf("[WARN] Failed to store catalog metadata for %s: %v", videoID, err)
	}

	return &IngestResult{
		VideoID:   videoID,
		VideoPath: s.PublicPath(videoID),
		Title:     title,
	}, nil
}

// Resolve returns the stored catalog metadata for a video
func (s *ServiceImpl) Resolve(ctx context.Context, videoID string) (*models.Video, error) {
	return s.repository.GetVideoByVideoID(ctx, videoID)
}

// MediaPath returns the local filesystem path of the video's media file
func (s *ServiceImpl) MediaPath(videoID string) string {
	return filepath.Join(s.videoDir, videoID+".mp4")
}

// PublicPath returns the URL path the media file is served under
func (s *ServiceImpl) PublicPath(videoID string) string {
	return PublicVideoPrefix + "/" + videoID + ".mp4"
}

// MediaExists reports whether the media file is present on disk
func (s *ServiceImpl) MediaExists(videoID string) bool {
	_, err := os.Stat(s.MediaPath(videoID))
	return err == nil
}

// extractSourceID pulls the external video id out of a locator.
// Accepted forms: watch?v=<id>, youtu.be/<id>, and /shorts/<id>.
func extractSourceID(locator string) (string, error) {
	parsed, err := url.Parse(locator)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", apperrors.InvalidLocator(locator)
	}

	if id := parsed.Query().Get("v"); id != "" {
		return id, nil
	}

	trimmed := strings.Trim(parsed.Path, "/")
	if strings.HasPrefix(trimmed, "shorts/") {
		if id := path.Base(trimmed); id != "" && id != "shorts" {
			return id, nil
		}
	}
	if strings.EqualFold(parsed.Host, "youtu.be") && trimmed != "" && !strings.Contains(trimmed, "/") {
		return trimmed, nil
	}

	return "", apperrors.InvalidLocator(locator)
}
