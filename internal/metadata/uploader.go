package metadata

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
)

// StorageConfig holds the storage service connection settings
type StorageConfig struct {
	// BaseURL is the storage service endpoint
	BaseURL string
	// APIKey authenticates this service against storage
	APIKey string
}

// uploadRequest is the storage service upload envelope
type uploadRequest struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"` // base64
}

// uploadResponse is the storage service response
type uploadResponse struct {
	URI string `json:"uri"`
}

// HTTPUploader implements Uploader against the platform's storage service
type HTTPUploader struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	config     StorageConfig
}

// NewHTTPUploader creates a new storage service uploader
func NewHTTPUploader(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, config StorageConfig) Uploader {
	return &HTTPUploader{
		httpClient: httpClient,
		json:       jsonAdapter,
		config:     config,
	}
}

// Upload stores a document and returns its public URI
func (u *HTTPUploader) Upload(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	body, err := u.json.Marshal(uploadRequest{
		Name:        name,
		ContentType: contentType,
		Content:     base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal upload request: %w", err)
	}

	headers := map[string]string{
		"Authorization": "Bearer " + u.config.APIKey,
	}

	respBody, err := u.httpClient.Post(ctx, u.config.BaseURL+"/v1/uploads", headers, body)
	if err != nil {
		return "", fmt.Errorf("failed to upload to storage: %w", err)
	}

	var resp uploadResponse
	if err := u.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if resp.URI == "" {
		return "", fmt.Errorf("storage returned empty URI for %s", name)
	}

	return resp.URI, nil
}
