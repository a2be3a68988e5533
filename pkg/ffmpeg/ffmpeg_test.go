package ffmpeg

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	f := New("ffmpeg", "ffprobe", 0.3, 30*time.Second)
	if f.ffmpegPath != "ffmpeg" {
		t.Errorf("Expected ffmpegPath to be 'ffmpeg', got %s", f.ffmpegPath)
	}
	if f.ffprobePath != "ffprobe" {
		t.Errorf("Expected ffprobePath to be 'ffprobe', got %s", f.ffprobePath)
	}
	if f.sceneThreshold != 0.3 {
		t.Errorf("Expected sceneThreshold to be 0.3, got %f", f.sceneThreshold)
	}
	if f.timeout != 30*time.Second {
		t.Errorf("Expected timeout to be 30s, got %v", f.timeout)
	}
}

func TestPtsTimeParsing(t *testing.T) {
	// Trimmed showinfo output as ffmpeg writes it to stderr
	stderr := `[Parsed_showinfo_1 @ 0x55d] n:   0 pts: 107520 pts_time:4.2     duration_time:0.033367
[Parsed_showinfo_1 @ 0x55d] n:   1 pts: 230400 pts_time:9       duration_time:0.033367
[Parsed_showinfo_1 @ 0x55d] color_range:tv color_space:bt709
[Parsed_showinfo_1 @ 0x55d] n:   2 pts: 396800 pts_time:15.5    duration_time:0.033367
frame=  3 fps=0.0 q=-0.0 Lsize=N/A time=00:00:19.96 bitrate=N/A`

	matches := ptsTimeRe.FindAllStringSubmatch(stderr, -1)
	if len(matches) != 3 {
		t.Fatalf("Expected 3 pts_time matches, got %d", len(matches))
	}

	expected := []string{"4.2", "9", "15.5"}
	for i, match := range matches {
		if match[1] != expected[i] {
			t.Errorf("Match %d: expected %s, got %s", i, expected[i], match[1])
		}
	}
}

func TestPtsTimeParsingNoMatches(t *testing.T) {
	stderr := `Input #0, mov,mp4, from 'video.mp4':
  Duration: 00:00:12.00, start: 0.000000, bitrate: 500 kb/s
frame=  0 fps=0.0 q=-0.0 Lsize=N/A`

	matches := ptsTimeRe.FindAllStringSubmatch(stderr, -1)
	if len(matches) != 0 {
		t.Errorf("Expected no matches, got %d", len(matches))
	}
}

// Integration test - only runs if ffmpeg/ffprobe are available
func TestValidateBinaries(t *testing.T) {
	f := New("ffmpeg", "ffprobe", 0.3, 30*time.Second)

	err := f.ValidateBinaries()
	if err != nil {
		t.Skipf("FFmpeg binaries not available: %v", err)
	}
}

func TestValidateBinariesMissing(t *testing.T) {
	f := New("definitely-not-ffmpeg", "definitely-not-ffprobe", 0.3, time.Second)
	if err := f.ValidateBinaries(); err == nil {
		t.Error("Expected error for missing binaries")
	}
}
