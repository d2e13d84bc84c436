// Package transform post-processes a captured snapshot with ffmpeg, applying
// the flips and rotation the webcam is configured with. All failures are soft:
// a missing tool or a failed run leaves the image untouched and only logs.
package transform

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// Options selects which transforms to apply. PixelFormat defaults to yuv420p,
// which works around color corruption in some ffmpeg builds.
type Options struct {
	FlipH       bool
	FlipV       bool
	Rotate90    bool
	PixelFormat string
}

func (o Options) active() bool {
	return o.FlipH || o.FlipV || o.Rotate90
}

// Transformer runs ffmpeg against a local image file.
type Transformer struct {
	ffmpegPath string
	opts       Options
	timeout    time.Duration
}

// New creates a Transformer invoking the tool at ffmpegPath.
func New(ffmpegPath string, opts Options, timeout time.Duration) *Transformer {
	return &Transformer{
		ffmpegPath: ffmpegPath,
		opts:       opts,
		timeout:    timeout,
	}
}

// FilterChain builds the ffmpeg -vf argument for opts. The order is fixed:
// pixel-format normalization, then rotation, then horizontal flip, then
// vertical flip. Reordering changes the visual output.
func FilterChain(opts Options) string {
	pixfmt := opts.PixelFormat
	if pixfmt == "" {
		pixfmt = "yuv420p"
	}

	parts := []string{"format=" + pixfmt}

	if opts.Rotate90 {
		parts = append(parts, "transpose=2") // 90 degrees counter clockwise
	}
	if opts.FlipH {
		parts = append(parts, "hflip")
	}
	if opts.FlipV {
		parts = append(parts, "vflip")
	}

	return strings.Join(parts, ",")
}

// Transform rewrites the file at path in place. It is a no-op when no
// transform flags are set or when the configured tool is absent or not
// executable; a non-zero exit is logged with the captured output and the
// original file is left as ffmpeg wrote it.
func (t *Transformer) Transform(ctx context.Context, path string) {
	if !t.opts.active() {
		return
	}

	info, err := os.Stat(t.ffmpegPath)
	if err != nil || info.Mode()&0o111 == 0 {
		zlog.Logger.Warn().Str("ffmpeg", t.ffmpegPath).Msg("ffmpeg missing or not executable, skipping transform")
		return
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer

	// ffmpeg reads and overwrites the same path; -y forces the overwrite.
	cmd := exec.CommandContext(ctx, t.ffmpegPath, "-y", "-i", path, "-vf", FilterChain(t.opts), path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	zlog.Logger.Info().Msgf("running: %s", strings.Join(cmd.Args, " "))

	if err := cmd.Run(); err != nil {
		zlog.Logger.Warn().
			Err(err).
			Str("stdout", stdout.String()).
			Str("stderr", stderr.String()).
			Msg("failed to rotate/flip image with ffmpeg")
		return
	}

	zlog.Logger.Info().Str("path", path).Msg("rotated/flipped image with ffmpeg")
}
