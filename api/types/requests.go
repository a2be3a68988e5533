package types

// IngestRequest asks the service to download and register a video
type IngestRequest struct {
	URL string `json:"url" binding:"required" example:"https://example.com/watch?v=XYZ123"`
}

// SegmentRequest asks for the shot list of an ingested video
type SegmentRequest struct {
	VideoID string `json:"video_id" binding:"required" example:"XYZ123_6f1c..."`
}

// AnnotationRequest carries one new annotation record.
// Pointer fields stay nil when the caller omits them, so validation can
// name every absent field rather than just the first.
type AnnotationRequest struct {
	VideoID       string   `json:"video_id" example:"XYZ123_6f1c..."`
	StartTime     *float64 `json:"start_time" example:"12.5"`
	StopTime      *float64 `json:"stop_time" example:"30"`
	Question      *string  `json:"question" example:"What just happened?"`
	AnswerChoices []string `json:"answer_choices" example:"A,B,C"`
	CorrectAnswer *string  `json:"correct_answer" example:"B"`
}
