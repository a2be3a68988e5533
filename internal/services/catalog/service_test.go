package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	videos map[string]*models.Video
}

func (r *fakeRepository) CreateVideo(ctx context.Context, video *models.Video) error {
	r.videos[video.VideoID] = video
	return nil
}

func (r *fakeRepository) GetVideoByVideoID(ctx context.Context, videoID string) (*models.Video, error) {
	if v, ok := r.videos[videoID]; ok {
		return v, nil
	}
	return nil, errors.New("video not found")
}

func float64Ptr(v float64) *float64 { return &v }
func stringPtr(v string) *string    { return &v }

func TestListVideos(t *testing.T) {
	ctx := context.Background()
	ledgers, err := ledger.NewFileStore(t.TempDir())
	require.NoError(t, err)

	repo := &fakeRepository{videos: map[string]*models.Video{
		"vid1": {VideoID: "vid1", Title: "First Video"},
	}}

	require.NoError(t, ledgers.Create(ctx, "vid1"))
	require.NoError(t, ledgers.Create(ctx, "vid2"))

	_, err = ledgers.Append(ctx, "vid1", ledger.AppendFields{
		StartTime:     float64Ptr(0),
		StopTime:      float64Ptr(5),
		Question:      stringPtr("q"),
		AnswerChoices: []string{"a", "b"},
		CorrectAnswer: stringPtr("a"),
	})
	require.NoError(t, err)

	service := NewService(ledgers, repo)
	summaries, err := service.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byID := make(map[string]models.VideoSummary)
	for _, s := range summaries {
		byID[s.VideoID] = s
	}

	assert.Equal(t, 1, byID["vid1"].AnnotationCount)
	assert.Equal(t, "First Video", byID["vid1"].Title, "stored title enriches the listing")

	// A video with no catalog metadata still lists; an empty ledger counts as zero
	assert.Equal(t, 0, byID["vid2"].AnnotationCount)
	assert.Empty(t, byID["vid2"].Title)
}

func TestListVideosEmptyStore(t *testing.T) {
	ledgers, err := ledger.NewFileStore(t.TempDir())
	require.NoError(t, err)

	service := NewService(ledgers, &fakeRepository{videos: map[string]*models.Video{}})
	summaries, err := service.ListVideos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
