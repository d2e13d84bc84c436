package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/aliskhannn/print-sms-notifier/internal/config"
)

// CloudinaryUploader performs unsigned uploads against the cloudinary upload
// API using a cloud name and an unsigned upload preset.
type CloudinaryUploader struct {
	client       *http.Client
	apiBase      string
	cloudName    string
	uploadPreset string
}

// NewCloudinary creates a CloudinaryUploader from provider settings.
func NewCloudinary(cfg config.Cloudinary, timeout time.Duration) *CloudinaryUploader {
	return &CloudinaryUploader{
		client:       &http.Client{Timeout: timeout},
		apiBase:      cfg.APIBase,
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
	}
}

type cloudinaryResponse struct {
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
}

// Upload implements Uploader.
func (u *CloudinaryUploader) Upload(ctx context.Context, filePath, _ string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", u.apiBase, u.cloudName)

	body, contentType, err := multipartFile(filePath, "file", map[string]string{
		"upload_preset": u.uploadPreset,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to cloudinary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary API error: %s", resp.Status)
	}

	var parsed cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode cloudinary response: %w", err)
	}

	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("cloudinary response contains no url")
	}

	return parsed.URL, nil
}

// multipartFile buffers a local file into a multipart body with the given
// file field name plus any extra form fields.
func multipartFile(filePath, fieldName string, extra map[string]string) (io.Reader, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile(fieldName, filepath.Base(filePath))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("copy file: %w", err)
	}

	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", k, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf, w.FormDataContentType(), nil
}
