package videos

import (
	"context"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
)

// Downloader acquires a remote video into a local file.
// A non-nil error carries the tool's diagnostic output.
type Downloader interface {
	Download(ctx context.Context, url, outputPath string) error
}

// TitleFetcher resolves the display title of a remote video
type TitleFetcher interface {
	Title(ctx context.Context, url string) (string, error)
}

// IngestResult describes a freshly ingested video
type IngestResult struct {
	VideoID   string
	VideoPath string
	Title     string
}

// Service defines the interface for video ingestion and lookup
type Service interface {
	// Ingest acquires the video behind the locator, mints a fresh
	// identity, and initializes its empty annotation ledger. Every call
	// mints a new identity, even for a locator seen before.
	Ingest(ctx context.Context, locator string) (*IngestResult, error)

	// Resolve returns the stored catalog metadata for a video
	Resolve(ctx context.Context, videoID string) (*models.Video, error)

	// MediaPath returns the local filesystem path of the video's media file
	MediaPath(videoID string) string

	// PublicPath returns the URL path the media file is served under
	PublicPath(videoID string) string

	// MediaExists reports whether the media file is present on disk
	MediaExists(videoID string) bool
}

// Repository defines the interface for video catalog data access
type Repository interface {
	CreateVideo(ctx context.Context, video *models.Video) error
	GetVideoByVideoID(ctx context.Context, videoID string) (*models.Video, error)
}
