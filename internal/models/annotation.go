package models

// AnnotationRecord is one question/answer unit anchored to a time range
// within a video. Records are immutable once written; the ledger only
// ever appends.
type AnnotationRecord struct {
	VideoID       string   `json:"video_id"`
	QuestionID    string   `json:"question_id"`
	StartTime     float64  `json:"start_time"`
	StopTime      float64  `json:"stop_time"`
	QuestionText  string   `json:"question_text"`
	AnswerChoices []string `json:"answer_choices"`
	CorrectAnswer string   `json:"correct_answer"`
	CreatedAt     string   `json:"timestamp"`
}

// Shot is a contiguous time interval treated as one visual unit.
// Shots are advisory UI hints, recomputed per request and never persisted.
type Shot struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// VideoSummary is one row of the cross-video catalog listing
type VideoSummary struct {
	VideoID         string `json:"video_id"`
	AnnotationCount int    `json:"annotation_count"`
	Title           string `json:"title,omitempty"`
}
