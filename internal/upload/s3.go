package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aliskhannn/print-sms-notifier/internal/config"
)

// S3Uploader uploads snapshots to an S3-compatible bucket. The URL policy is
// configurable because Twilio dislikes redirects: "public" builds a long-lived
// static URL from the base URL, "presigned" returns a short-lived signed URL.
type S3Uploader struct {
	client        *minio.Client
	bucket        string
	keyPrefix     string
	baseURL       string
	urlPolicy     string
	presignExpiry time.Duration
	timeout       time.Duration
}

// NewS3 creates an S3Uploader from provider settings.
func NewS3(cfg config.S3, timeout time.Duration) (*S3Uploader, error) {
	endpoint := strings.TrimPrefix(cfg.Endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", cfg.Bucket)
	}

	return &S3Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		keyPrefix:     cfg.KeyPrefix,
		baseURL:       strings.TrimRight(baseURL, "/"),
		urlPolicy:     cfg.URLPolicy,
		presignExpiry: cfg.PresignExpiry,
		timeout:       timeout,
	}, nil
}

// Upload implements Uploader. The object key is the configured prefix plus
// the suggested filename, or a random UUID name when none is suggested.
func (u *S3Uploader) Upload(ctx context.Context, filePath, suggestedName string) (string, error) {
	if suggestedName == "" {
		suggestedName = uuid.New().String() + ".jpg"
	}

	key := u.keyPrefix + suggestedName

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	_, err := u.client.FPutObject(ctx, u.bucket, key, filePath, minio.PutObjectOptions{
		ContentType:  "image/jpeg",
		CacheControl: "max-age=300",
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	if u.urlPolicy == "presigned" {
		signed, err := u.client.PresignedGetObject(ctx, u.bucket, key, u.presignExpiry, nil)
		if err != nil {
			return "", fmt.Errorf("presign object %s: %w", key, err)
		}

		return signed.String(), nil
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}
