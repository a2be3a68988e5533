package ingest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GuangSTrip/BenchAnnotate/api/ingest"
	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/videos"
	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVideoService struct {
	result *videos.IngestResult
	err    error
}

func (s *fakeVideoService) Ingest(ctx context.Context, locator string) (*videos.IngestResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *fakeVideoService) Resolve(ctx context.Context, videoID string) (*models.Video, error) {
	return nil, errors.New("video not found")
}

func (s *fakeVideoService) MediaPath(videoID string) string  { return "" }
func (s *fakeVideoService) PublicPath(videoID string) string { return "" }
func (s *fakeVideoService) MediaExists(videoID string) bool  { return false }

func setupRouter(service videos.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/ingest", ingest.Post(&types.Dependencies{VideoService: service}))
	return router
}

func postIngest(t *testing.T, router *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/ingest", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIngestSuccess(t *testing.T) {
	service := &fakeVideoService{result: &videos.IngestResult{
		VideoID:   "XYZ123_d3adb33f",
		VideoPath: "/static/videos/XYZ123_d3adb33f.mp4",
		Title:     "A Fine Video",
	}}
	router := setupRouter(service)

	w := postIngest(t, router, map[string]interface{}{"url": "https://example.com/watch?v=XYZ123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.IngestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "XYZ123_d3adb33f", resp.VideoID)
	assert.Equal(t, "/static/videos/XYZ123_d3adb33f.mp4", resp.VideoPath)
	assert.Equal(t, "A Fine Video", resp.VideoTitle)
}

func TestIngestMissingURL(t *testing.T) {
	router := setupRouter(&fakeVideoService{})

	w := postIngest(t, router, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestInvalidLocator(t *testing.T) {
	service := &fakeVideoService{err: apperrors.InvalidLocator("no video id in url")}
	router := setupRouter(service)

	w := postIngest(t, router, map[string]interface{}{"url": "https://example.com/watch"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_LOCATOR", resp.Code)
}

func TestIngestDownloadFailure(t *testing.T) {
	service := &fakeVideoService{err: apperrors.AcquisitionFailed(
		errors.New("exit status 1"), "ERROR: This video is unavailable")}
	router := setupRouter(service)

	w := postIngest(t, router, map[string]interface{}{"url": "https://example.com/watch?v=XYZ123"})
	require.Equal(t, http.StatusBadGateway, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ACQUISITION_FAILED", resp.Code)
	assert.Equal(t, "ERROR: This video is unavailable", resp.Details["diagnostic"])
}
