package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/mural-hq/mint-fulfillment/internal/adapter"
	"github.com/mural-hq/mint-fulfillment/internal/chain"
)

// Config holds the minting gateway connection settings
type Config struct {
	// BaseURL is the gateway endpoint, e.g. "https://mint-gateway.internal"
	BaseURL string
	// APIKey authenticates this service against the gateway
	APIKey string
}

// errorResponse is the gateway's error envelope
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client implements chain.Service against the platform's minting gateway.
// The gateway holds the signing keys and builds transactions; this client only
// submits requests and translates the gateway's error text into the transient
// vs terminal taxonomy via chain.Classify.
type Client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	config     Config
}

// NewClient creates a new minting gateway client
func NewClient(httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, config Config) chain.Service {
	return &Client{
		httpClient: httpClient,
		json:       jsonAdapter,
		config:     config,
	}
}

// CreateCollection creates the on-chain collection backing a post
func (c *Client) CreateCollection(ctx context.Context, params chain.CreateCollectionParams) (*chain.CollectionResult, error) {
	var result chain.CollectionResult
	if err := c.post(ctx, "/v1/collections", params, &result); err != nil {
		return nil, err
	}

	if result.CollectionAddress == "" {
		return nil, &chain.TerminalError{Err: errors.New("gateway returned empty collection address")}
	}

	return &result, nil
}

// CreateEdition mints one edition referencing an existing collection
func (c *Client) CreateEdition(ctx context.Context, params chain.CreateEditionParams) (*chain.EditionResult, error) {
	var result chain.EditionResult
	if err := c.post(ctx, "/v1/editions", params, &result); err != nil {
		return nil, err
	}

	if result.AssetAddress == "" {
		return nil, &chain.TerminalError{Err: errors.New("gateway returned empty asset address")}
	}

	return &result, nil
}

// post submits a request and decodes either the result or the error envelope
func (c *Client) post(ctx context.Context, path string, params interface{}, result interface{}) error {
	body, err := c.json.Marshal(params)
	if err != nil {
		return &chain.TerminalError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.config.APIKey,
	}

	respBody, err := c.httpClient.Post(ctx, c.config.BaseURL+path, headers, body)
	if err != nil {
		// HTTP-level failures carry the gateway's error text when present;
		// fall back to the transport error otherwise
		return chain.Classify(fmt.Errorf("gateway request failed: %w", err))
	}

	var errResp errorResponse
	if uerr := c.json.Unmarshal(respBody, &errResp); uerr == nil && errResp.Error.Message != "" {
		return chain.Classify(fmt.Errorf("gateway error %s: %s", errResp.Error.Code, errResp.Error.Message))
	}

	if err := c.json.Unmarshal(respBody, result); err != nil {
		return &chain.TerminalError{Err: fmt.Errorf("failed to decode gateway response: %w", err)}
	}

	return nil
}
