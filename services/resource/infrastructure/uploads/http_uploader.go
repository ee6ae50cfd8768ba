// Package uploads implements repositories.ImageUploader against object
// storage and against a remote upload service.
package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ghuser/communityhub/services/resource/domain"
	"github.com/ghuser/communityhub/services/resource/domain/models"
)

const (
	formFieldFiles    = "files[]"
	formFieldCategory = "category"
	maxResponseBytes  = 1 << 20
)

// UploadResponse is the JSON body returned by the upload service.
type UploadResponse struct {
	ImageURLs []string `json:"imageUrls"`
}

// HTTPUploader posts files as multipart/form-data to a remote upload service.
type HTTPUploader struct {
	endpoint string
	client   *http.Client
}

// NewHTTPUploader returns an uploader for endpoint. A nil client gets a traced
// default with a 60s timeout.
func NewHTTPUploader(endpoint string, client *http.Client) *HTTPUploader {
	if client == nil {
		client = &http.Client{
			Timeout:   60 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &HTTPUploader{endpoint: endpoint, client: client}
}

// Upload sends every file in one request under the given category.
func (u *HTTPUploader) Upload(ctx context.Context, folder string, files []models.UploadFile) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	body, contentType, err := encodeMultipart(folder, files)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", domain.ErrUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrUploadFailed, err)
	}
	if resp.StatusCode == http.StatusUnsupportedMediaType {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, bytes.TrimSpace(data))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUploadFailed, resp.StatusCode, bytes.TrimSpace(data))
	}

	var out UploadResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrUploadFailed, err)
	}
	if len(out.ImageURLs) != len(files) {
		return nil, fmt.Errorf("%w: sent %d files, got %d urls", domain.ErrUploadFailed, len(files), len(out.ImageURLs))
	}
	return out.ImageURLs, nil
}

func encodeMultipart(category string, files []models.UploadFile) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := w.CreateFormFile(formFieldFiles, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.WriteField(formFieldCategory, category); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
