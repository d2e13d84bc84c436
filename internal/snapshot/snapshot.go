// Package snapshot fetches a still image from the webcam endpoint and stages
// it in a temporary file for the rest of the picture pipeline.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// ErrNoSource marks the disabled case: no snapshot URL is configured.
var ErrNoSource = errors.New("no snapshot source configured")

// Acquirer captures webcam snapshots over HTTP.
type Acquirer struct {
	client   *http.Client
	strategy retry.Strategy
}

// NewAcquirer creates an Acquirer with the given per-fetch timeout and retry
// strategy. An Attempts value below one is treated as a single attempt.
func NewAcquirer(timeout time.Duration, strategy retry.Strategy) *Acquirer {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &Acquirer{
		client:   &http.Client{Timeout: timeout},
		strategy: strategy,
	}
}

// Capture fetches sourceURL into a temporary file and returns its path. The
// file is renamed with a .jpg suffix so downstream tooling recognizes it as an
// image; the fetch itself guarantees no extension. The caller owns the file
// and removes it when done.
func (a *Acquirer) Capture(ctx context.Context, sourceURL string) (string, error) {
	if sourceURL == "" {
		return "", ErrNoSource
	}

	var (
		path string
		err  error
	)

	delay := a.strategy.Delay

	for attempt := 1; attempt <= a.strategy.Attempts; attempt++ {
		path, err = a.fetch(ctx, sourceURL)
		if err == nil {
			return path, nil
		}

		if attempt < a.strategy.Attempts {
			zlog.Logger.Warn().Err(err).Msgf("snapshot fetch failed, retry %d/%d", attempt, a.strategy.Attempts)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}

			delay = time.Duration(float64(delay) * a.strategy.Backoff)
		}
	}

	return "", fmt.Errorf("fetch snapshot: %w", err)
}

func (a *Acquirer) fetch(ctx context.Context, sourceURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", sourceURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: unexpected status %s", sourceURL, resp.Status)
	}

	tmp, err := os.CreateTemp("", "snapshot-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close snapshot: %w", err)
	}

	jpgPath := tmp.Name() + ".jpg"
	if err := os.Rename(tmp.Name(), jpgPath); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("rename snapshot: %w", err)
	}

	return jpgPath, nil
}
