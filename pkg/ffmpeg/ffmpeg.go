// Package ffmpeg wraps ffmpeg and ffprobe for shot-boundary detection
// and duration probing. Both tools run as synchronous subprocesses.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
)

// FFmpeg wraps ffmpeg and ffprobe functionality
type FFmpeg struct {
	ffmpegPath     string
	ffprobePath    string
	sceneThreshold float64
	timeout        time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, sceneThreshold float64, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:     ffmpegPath,
		ffprobePath:    ffprobePath,
		sceneThreshold: sceneThreshold,
		timeout:        timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("ffmpeg not found: %s", f.ffmpegPath)
	}
	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("ffprobe not found: %s", f.ffprobePath)
	}
	return nil
}

// showinfo writes frame metadata to stderr; pts_time carries the
// timestamp of each frame the scene filter selected
var ptsTimeRe = regexp.MustCompile(`pts_time:([0-9]+(?:\.[0-9]+)?)`)

// DetectBoundaries runs ffmpeg's scene-change filter over the video and
// returns the timestamps, in seconds, where a new shot begins
func (f *FFmpeg) DetectBoundaries(ctx context.Context, videoPath string) ([]float64, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	filter := fmt.Sprintf("select='gt(scene,%g)',showinfo", f.sceneThreshold)
	args := []string{
		"-hide_banner",
		"-i", videoPath,
		"-vf", filter,
		"-f", "null",
		"-",
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, apperrors.SegmentationFailed(err, stderr.String())
	}

	boundaries := []float64{}
	for _, match := range ptsTimeRe.FindAllStringSubmatch(stderr.String(), -1) {
		ts, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		boundaries = append(boundaries, ts)
	}
	return boundaries, nil
}
