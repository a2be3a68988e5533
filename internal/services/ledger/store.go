package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
	"github.com/google/uuid"
)

const (
	filePrefix = "video_"
	fileSuffix = ".csv"
)

// header is the fixed column order of every ledger file
var header = []string{
	"video_id",
	"question_id",
	"question_start_time",
	"question_stop_time",
	"question_text",
	"answer_choices",
	"correct_answer",
	"timestamp",
}

// FileStore implements Store on top of one CSV file per video.
//
// Locking is partitioned by video id: a write lock serializes appends on
// one video while leaving every other video free. Readers take the read
// lock so they never observe a partially written row.
type FileStore struct {
	root  string
	locks sync.Map // videoID -> *sync.RWMutex
}

// NewFileStore creates a ledger store rooted at dir
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}
	return &FileStore{root: dir}, nil
}

func (s *FileStore) lockFor(videoID string) *sync.RWMutex {
	lock, _ := s.locks.LoadOrStore(videoID, &sync.RWMutex{})
	return lock.(*sync.RWMutex)
}

func (s *FileStore) path(videoID string) string {
	return filepath.Join(s.root, filePrefix+videoID+fileSuffix)
}

// Create initializes an empty ledger for a video. The header is written
// to a temporary file and renamed into place so a concurrent reader
// either sees no ledger or a complete one.
func (s *FileStore) Create(ctx context.Context, videoID string) error {
	mu := s.lockFor(videoID)
	mu.Lock()
	defer mu.Unlock()

	tmp, err := os.CreateTemp(s.root, ".ledger_*"+fileSuffix)
	if err != nil {
		return apperrors.WriteFailed(videoID, err)
	}
	tmpPath := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.WriteFailed(videoID, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return apperrors.WriteFailed(videoID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return apperrors.WriteFailed(videoID, err)
	}

	if err := os.Rename(tmpPath, s.path(videoID)); err != nil {
		os.Remove(tmpPath)
		return apperrors.WriteFailed(videoID, err)
	}
	return nil
}

// Exists reports whether a ledger exists for the video
func (s *FileStore) Exists(videoID string) bool {
	_, err := os.Stat(s.path(videoID))
	return err == nil
}

// Append validates the supplied fields, mints a fresh question id, and
// appends exactly one record. Validation happens before any side effect;
// a rejected append leaves the ledger byte-for-byte unchanged.
func (s *FileStore) Append(ctx context.Context, videoID string, fields AppendFields) (string, error) {
	if missing := fields.missing(); len(missing) > 0 {
		return "", apperrors.MissingFields(missing)
	}

	mu := s.lockFor(videoID)
	mu.Lock()
	defer mu.Unlock()

	if !s.Exists(videoID) {
		return "", apperrors.LedgerNotFound(videoID)
	}

	questionID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	choicesJSON, err := json.Marshal(fields.AnswerChoices)
	if err != nil {
		return "", apperrors.WriteFailed(videoID, err)
	}

	// Encode the full row into memory first so the file sees one write
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	row := []string{
		videoID,
		questionID,
		formatSeconds(*fields.StartTime),
		formatSeconds(*fields.StopTime),
		*fields.Question,
		string(choicesJSON),
		*fields.CorrectAnswer,
		createdAt,
	}
	if err := w.Write(row); err != nil {
		return "", apperrors.WriteFailed(videoID, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", apperrors.WriteFailed(videoID, err)
	}

	f, err := os.OpenFile(s.path(videoID), os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", apperrors.WriteFailed(videoID, err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return "", apperrors.WriteFailed(videoID, err)
	}
	return questionID, nil
}

// ReadAll returns every record in write order, decoding answer_choices
// back into its structured form
func (s *FileStore) ReadAll(ctx context.Context, videoID string) ([]models.AnnotationRecord, error) {
	mu := s.lockFor(videoID)
	mu.RLock()
	defer mu.RUnlock()

	f, err := os.Open(s.path(videoID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.LedgerNotFound(videoID)
		}
		return nil, apperrors.ReadFailed(videoID, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		return nil, apperrors.ReadFailed(videoID, err)
	}

	records := []models.AnnotationRecord{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.ReadFailed(videoID, err)
		}
		if len(row) != len(header) {
			return nil, apperrors.ReadFailed(videoID, fmt.Errorf("row has %d columns, want %d", len(row), len(header)))
		}

		record, err := decodeRow(row)
		if err != nil {
			return nil, apperrors.ReadFailed(videoID, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Count returns the number of records. Rows are scanned with the CSV
// reader but record bodies are never decoded, so counting a large
// ledger stays cheap.
func (s *FileStore) Count(ctx context.Context, videoID string) (int, error) {
	mu := s.lockFor(videoID)
	mu.RLock()
	defer mu.RUnlock()

	return s.countLocked(videoID)
}

func (s *FileStore) countLocked(videoID string) (int, error) {
	f, err := os.Open(s.path(videoID))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, apperrors.LedgerNotFound(videoID)
		}
		return 0, apperrors.ReadFailed(videoID, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil { // header
		if err == io.EOF {
			return 0, apperrors.ReadFailed(videoID, fmt.Errorf("ledger has no header"))
		}
		return 0, apperrors.ReadFailed(videoID, err)
	}

	count := 0
	for {
		if _, err := r.Read(); err != nil {
			if err == io.EOF {
				return count, nil
			}
			return 0, apperrors.ReadFailed(videoID, err)
		}
		count++
	}
}

// List enumerates every ledger under the store root with its record
// count. A ledger that cannot be counted is logged and skipped so one
// bad file never fails the whole listing.
func (s *FileStore) List(ctx context.Context) ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading ledger directory: %w", err)
	}

	entries := []Entry{}
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		videoID := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)

		count, err := s.Count(ctx, videoID)
		if err != nil {
			log.Printf("[WARN] Skipping unreadable ledger for video %s: %v", videoID, err)
			continue
		}
		entries = append(entries, Entry{VideoID: videoID, Count: count})
	}
	return entries, nil
}

// missing returns the name of every absent required field
func (f AppendFields) missing() []string {
	var missing []string
	if f.StartTime == nil {
		missing = append(missing, "start_time")
	}
	if f.StopTime == nil {
		missing = append(missing, "stop_time")
	}
	if f.Question == nil {
		missing = append(missing, "question")
	}
	if f.AnswerChoices == nil {
		missing = append(missing, "answer_choices")
	}
	if f.CorrectAnswer == nil {
		missing = append(missing, "correct_answer")
	}
	return missing
}

func decodeRow(row []string) (models.AnnotationRecord, error) {
	start, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return models.AnnotationRecord{}, fmt.Errorf("parsing start time %q: %w", row[2], err)
	}
	stop, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return models.AnnotationRecord{}, fmt.Errorf("parsing stop time %q: %w", row[3], err)
	}

	var choices []string
	if err := json.Unmarshal([]byte(row[5]), &choices); err != nil {
		return models.AnnotationRecord{}, fmt.Errorf("parsing answer choices: %w", err)
	}

	return models.AnnotationRecord{
		VideoID:       row[0],
		QuestionID:    row[1],
		StartTime:     start,
		StopTime:      stop,
		QuestionText:  row[4],
		AnswerChoices: choices,
		CorrectAnswer: row[6],
		CreatedAt:     row[7],
	}, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
