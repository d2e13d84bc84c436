package upload

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/print-sms-notifier/internal/config"
)

// newS3Server fakes an S3 endpoint, recording the object path of every PUT.
func newS3Server(t *testing.T, gotPath *string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			*gotPath = r.URL.Path
			io.Copy(io.Discard, r.Body)
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newS3TestUploader(t *testing.T, cfg config.S3) *S3Uploader {
	t.Helper()

	u, err := NewS3(cfg, time.Second)
	require.NoError(t, err)

	return u
}

func TestS3_Upload_PublicURL(t *testing.T) {
	var gotPath string
	srv := newS3Server(t, &gotPath)

	u := newS3TestUploader(t, config.S3{
		Endpoint:  srv.URL,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "snapshots",
		KeyPrefix: "prints/",
		BaseURL:   "https://cdn.example.com",
		URLPolicy: "public",
	})

	publicURL, err := u.Upload(context.Background(), writeSnapshotFile(t), "part.gco_2026-08-31.jpg")
	require.NoError(t, err)

	assert.Equal(t, "/snapshots/prints/part.gco_2026-08-31.jpg", gotPath, "object key is prefix plus suggested name")
	assert.Equal(t, "https://cdn.example.com/prints/part.gco_2026-08-31.jpg", publicURL)
}

func TestS3_Upload_DefaultBaseURL(t *testing.T) {
	var gotPath string
	srv := newS3Server(t, &gotPath)

	u := newS3TestUploader(t, config.S3{
		Endpoint:  srv.URL,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "snapshots",
		URLPolicy: "public",
	})

	publicURL, err := u.Upload(context.Background(), writeSnapshotFile(t), "benchy.jpg")
	require.NoError(t, err)

	assert.Equal(t, "https://snapshots.s3.amazonaws.com/benchy.jpg", publicURL)
}

func TestS3_Upload_RandomKeyWhenNoNameSuggested(t *testing.T) {
	var gotPath string
	srv := newS3Server(t, &gotPath)

	u := newS3TestUploader(t, config.S3{
		Endpoint:  srv.URL,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "snapshots",
		KeyPrefix: "prints/",
		URLPolicy: "public",
	})

	_, err := u.Upload(context.Background(), writeSnapshotFile(t), "")
	require.NoError(t, err)

	uuidKey := regexp.MustCompile(`^/snapshots/prints/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.jpg$`)
	assert.Regexp(t, uuidKey, gotPath)
}

func TestS3_Upload_PresignedURL(t *testing.T) {
	var gotPath string
	srv := newS3Server(t, &gotPath)

	u := newS3TestUploader(t, config.S3{
		Endpoint:      srv.URL,
		AccessKey:     "access",
		SecretKey:     "secret",
		Bucket:        "snapshots",
		KeyPrefix:     "prints/",
		URLPolicy:     "presigned",
		PresignExpiry: time.Hour,
	})

	signedURL, err := u.Upload(context.Background(), writeSnapshotFile(t), "part.jpg")
	require.NoError(t, err)

	parsed, err := neturl.Parse(signedURL)
	require.NoError(t, err)

	assert.Equal(t, "/snapshots/prints/part.jpg", parsed.Path)
	assert.Equal(t, "3600", parsed.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, parsed.Query().Get("X-Amz-Signature"))
}

func TestS3_Upload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	u := newS3TestUploader(t, config.S3{
		Endpoint:  srv.URL,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "snapshots",
		URLPolicy: "public",
	})

	_, err := u.Upload(context.Background(), writeSnapshotFile(t), "part.jpg")
	assert.Error(t, err)
}
