package ffmpeg

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
)

// Duration returns a video's total duration in seconds using ffprobe
func (f *FFmpeg) Duration(ctx context.Context, videoPath string) (float64, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	}

	cmd := exec.CommandContext(ctx, f.ffprobePath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, apperrors.SegmentationFailed(err, stderr.String())
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(stdout.String()), 64)
	if err != nil {
		return 0, apperrors.SegmentationFailed(err, "ffprobe returned no parsable duration")
	}
	return duration, nil
}
