// Package ytdlp wraps the yt-dlp command line tool for video
// acquisition. Downloads are synchronous blocking calls; the caller's
// request is held open for their duration.
package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	apperrors "github.com/GuangSTrip/BenchAnnotate/pkg/errors"
)

// Client invokes yt-dlp as a subprocess
type Client struct {
	path      string
	maxHeight int
	timeout   time.Duration
}

// New creates a new yt-dlp client
func New(path string, maxHeight int, timeout time.Duration) *Client {
	return &Client{
		path:      path,
		maxHeight: maxHeight,
		timeout:   timeout,
	}
}

// ValidateBinary checks that yt-dlp is available
func (c *Client) ValidateBinary() error {
	if _, err := exec.LookPath(c.path); err != nil {
		return fmt.Errorf("yt-dlp not found: %s", c.path)
	}
	return nil
}

// Download fetches the video behind url into outputPath as mp4.
// A non-zero exit surfaces the tool's stderr in the returned error.
func (c *Client) Download(ctx context.Context, url, outputPath string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	format := fmt.Sprintf(
		"bestvideo[ext=mp4][height<=%d]+bestaudio[ext=m4a]/best[ext=mp4][height<=%d][acodec!=none]",
		c.maxHeight, c.maxHeight,
	)
	args := []string{
		"-f", format,
		"-o", outputPath,
		"--merge-output-format", "mp4",
		url,
	}

	cmd := exec.CommandContext(ctx, c.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return apperrors.AcquisitionFailed(err, stderr.String())
	}
	return nil
}

// Title resolves the display title of the video behind url
func (c *Client) Title(ctx context.Context, url string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.path, "--get-title", url)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("yt-dlp --get-title failed: %w (%s)", err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
