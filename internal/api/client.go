// Package api implements the HTTP client for the Bookcard server's
// download client endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "bookcardctl"

	// minServerVersion is the oldest server this toolkit has been
	// verified against. Older servers predate additional_settings.
	minServerVersion = "0.8.0"
)

// Client talks to the Bookcard HTTP API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given server URL. The API key is
// sent as X-Api-Key on every request.
func NewClient(serverURL, apiKey string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListDownloadClients retrieves all configured download clients.
func (c *Client) ListDownloadClients(ctx context.Context) ([]DownloadClient, error) {
	var clients []DownloadClient
	if err := c.do(ctx, http.MethodGet, "/api/download_clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetDownloadClient retrieves one download client by id.
func (c *Client) GetDownloadClient(ctx context.Context, id int64) (*DownloadClient, error) {
	var client DownloadClient
	path := fmt.Sprintf("/api/download_clients/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// CreateDownloadClient persists a new download client.
func (c *Client) CreateDownloadClient(ctx context.Context, payload Payload) (*DownloadClient, error) {
	var client DownloadClient
	if err := c.do(ctx, http.MethodPost, "/api/download_clients", payload, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateDownloadClient applies a partial update to an existing
// download client. Blank credentials in the payload are omitted from
// the request body so the server keeps its stored values.
func (c *Client) UpdateDownloadClient(ctx context.Context, id int64, payload Payload) (*DownloadClient, error) {
	var client DownloadClient
	path := fmt.Sprintf("/api/download_clients/%d", id)
	if err := c.do(ctx, http.MethodPut, path, payload, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteDownloadClient removes a download client.
func (c *Client) DeleteDownloadClient(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/download_clients/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// TestConnection tests a persisted client using the credentials
// stored on the server.
func (c *Client) TestConnection(ctx context.Context, id int64) (*TestResult, error) {
	var result TestResult
	path := fmt.Sprintf("/api/download_clients/%d/test", id)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TestNewConnection tests an unsaved draft payload without
// persisting it.
func (c *Client) TestNewConnection(ctx context.Context, payload Payload) (*TestResult, error) {
	var result TestResult
	if err := c.do(ctx, http.MethodPost, "/api/download_clients/test", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetClientItems lists the active downloads on a client.
func (c *Client) GetClientItems(ctx context.Context, id int64) (*ItemsResponse, error) {
	var items ItemsResponse
	path := fmt.Sprintf("/api/download_clients/%d/items", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return &items, nil
}

// SystemStatus fetches the server build information and warns when
// the server is older than this toolkit supports.
func (c *Client) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := c.do(ctx, http.MethodGet, "/api/system/status", nil, &status); err != nil {
		return nil, err
	}

	serverVer, err := semver.NewVersion(status.Version)
	if err != nil {
		log.Warn().Str("version", status.Version).Msg("server reported an unparseable version")
		return &status, nil
	}
	minVer := semver.MustParse(minServerVersion)
	if serverVer.LessThan(minVer) {
		log.Warn().
			Str("serverVersion", serverVer.String()).
			Str("minVersion", minVer.String()).
			Msg("server is older than the minimum supported version - upgrade the server")
	}

	return &status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("api %s returned status %d: %s", path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		return nil, fmt.Errorf("server url is required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
