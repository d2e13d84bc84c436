// Package upload pushes a captured snapshot to an image-hosting provider and
// returns a URL Twilio can fetch as message media. Provider selection is
// configuration-driven; exactly one provider is used per event and there is no
// cross-provider fallback.
package upload

import (
	"context"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/print-sms-notifier/internal/config"
)

// Uploader uploads a local image file and returns a publicly fetchable URL.
// An empty URL with a nil error means the provider intentionally hosts
// nothing (the no-op variant).
type Uploader interface {
	Upload(ctx context.Context, filePath, suggestedName string) (string, error)
}

// Noop is the disabled provider: it hosts nothing and never fails.
type Noop struct{}

// Upload implements Uploader.
func (Noop) Upload(context.Context, string, string) (string, error) {
	return "", nil
}

// New selects the configured provider. Unknown or unset providers, and
// providers whose client cannot be constructed, degrade to Noop.
func New(cfg config.Upload) Uploader {
	switch cfg.Provider {
	case "aws_s3":
		u, err := NewS3(cfg.S3, cfg.Timeout)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to create s3 uploader, image hosting disabled")
			return Noop{}
		}
		return u
	case "cloudinary":
		return NewCloudinary(cfg.Cloudinary, cfg.Timeout)
	case "uploads.im":
		return NewUploadsIm(cfg.UploadsIm, cfg.Timeout)
	default:
		return Noop{}
	}
}
