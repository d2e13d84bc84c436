package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aliskhannn/print-sms-notifier/internal/config"
)

// UploadsImUploader posts the snapshot to the uploads.im anonymous hosting
// API and returns the hosted image URL.
type UploadsImUploader struct {
	client   *http.Client
	endpoint string
}

// NewUploadsIm creates an UploadsImUploader from provider settings.
func NewUploadsIm(cfg config.UploadsIm, timeout time.Duration) *UploadsImUploader {
	return &UploadsImUploader{
		client:   &http.Client{Timeout: timeout},
		endpoint: cfg.Endpoint,
	}
}

// uploadsImResponse holds the part of the API response the uploader consumes;
// success is gated on the transport status, not on any body status field.
type uploadsImResponse struct {
	Data struct {
		ImgURL string `json:"img_url"`
	} `json:"data"`
}

// Upload implements Uploader.
func (u *UploadsImUploader) Upload(ctx context.Context, filePath, _ string) (string, error) {
	body, contentType, err := multipartFile(filePath, "upload", nil)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to uploads.im: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("uploads.im API error: %s", resp.Status)
	}

	var parsed uploadsImResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode uploads.im response: %w", err)
	}

	if parsed.Data.ImgURL == "" {
		return "", fmt.Errorf("uploads.im response contains no image url")
	}

	return parsed.Data.ImgURL, nil
}
