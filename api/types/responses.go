package types

import "github.com/GuangSTrip/BenchAnnotate/internal/models"

// ErrorResponse is the uniform error payload: a machine-readable code
// plus human-readable detail
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// IngestResponse for a successful video ingestion
type IngestResponse struct {
	Success    bool   `json:"success"`
	VideoID    string `json:"video_id"`
	VideoPath  string `json:"video_path"`
	VideoTitle string `json:"video_title"`
}

// SegmentResponse for a shot detection request
type SegmentResponse struct {
	Success  bool          `json:"success"`
	Shots    []models.Shot `json:"shots"`
	Duration float64       `json:"duration"`
}

// AnnotationCreatedResponse for a successful annotation append
type AnnotationCreatedResponse struct {
	Success    bool   `json:"success"`
	QuestionID string `json:"question_id"`
}

// VideoAnnotationsResponse for a single video's annotation listing.
// VideoPath is null when the media file no longer exists on disk.
type VideoAnnotationsResponse struct {
	VideoID     string                    `json:"video_id"`
	VideoPath   *string                   `json:"video_path"`
	Annotations []models.AnnotationRecord `json:"annotations"`
}

// VideoListResponse for the cross-video catalog listing
type VideoListResponse struct {
	Videos []models.VideoSummary `json:"videos"`
}
