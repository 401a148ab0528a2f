package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"
)

// APIKeyHeader is the header name for API key authentication
const APIKeyHeader = "X-API-Key"

// APIKeyClient is an HTTP client that authenticates every request with a
// static API key header. Used for the PNR registry and provider APIs.
type APIKeyClient struct {
	client  *nethttp.Client
	apiKey  string
	baseURL string
}

// NewAPIKeyClient creates a new HTTP client with API key authentication
func NewAPIKeyClient(baseURL, apiKey string, timeout time.Duration) *APIKeyClient {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &APIKeyClient{
		client: &nethttp.Client{
			Timeout: timeout,
		},
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(APIKeyHeader, c.apiKey)

	return c.client.Do(req)
}

// Get performs a GET request with API key authentication
func (c *APIKeyClient) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body and API key authentication
func (c *APIKeyClient) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// PostJSON performs a POST request and decodes the JSON response
func (c *APIKeyClient) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// GetJSON performs a GET request and decodes the JSON response
func (c *APIKeyClient) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}
