package ledger

import (
	"context"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
)

// AppendFields holds the caller-supplied fields of a new annotation.
// Pointer fields distinguish "absent" from zero values so validation
// can name every missing field.
type AppendFields struct {
	StartTime     *float64
	StopTime      *float64
	Question      *string
	AnswerChoices []string
	CorrectAnswer *string
}

// Entry is one ledger in a cross-video listing
type Entry struct {
	VideoID string
	Count   int
}

// Store defines the interface for the per-video annotation ledger.
//
// Every video owns exactly one ledger, created empty at ingestion.
// Records are append-only and immutable; write order is display order.
type Store interface {
	// Create initializes an empty ledger (header row only) for a video
	Create(ctx context.Context, videoID string) error

	// Exists reports whether a ledger exists for the video
	Exists(videoID string) bool

	// Append validates fields, mints a question id, and appends one record.
	// Appends on the same video are serialized; different videos never contend.
	Append(ctx context.Context, videoID string, fields AppendFields) (string, error)

	// ReadAll returns every record in write order
	ReadAll(ctx context.Context, videoID string) ([]models.AnnotationRecord, error)

	// Count returns the number of records without decoding record bodies
	Count(ctx context.Context, videoID string) (int, error)

	// List enumerates every known ledger with its record count.
	// Unreadable ledgers are omitted, never fatal.
	List(ctx context.Context) ([]Entry, error)
}
