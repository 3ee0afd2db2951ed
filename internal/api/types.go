package api

import "github.com/bookcard-io/bookcard-clients/internal/clienttype"

// PathMapping maps a remote path reported by a download client to the
// local path Bookcard should import from.
type PathMapping struct {
	Remote string `json:"remote"`
	Local  string `json:"local"`
}

// Payload is the wire shape for creating or updating a download
// client. Core columns are always present; everything type-specific
// lives in AdditionalSettings. Username and Password are omitted
// entirely when blank so the server never overwrites stored
// credentials with empty strings.
type Payload struct {
	Name               string                `json:"name"`
	ClientType         clienttype.ClientType `json:"client_type"`
	Host               string                `json:"host"`
	Port               int                   `json:"port"`
	UseSSL             bool                  `json:"use_ssl"`
	Username           string                `json:"username,omitempty"`
	Password           string                `json:"password,omitempty"`
	Priority           int                   `json:"priority"`
	TimeoutSeconds     int                   `json:"timeout_seconds"`
	Enabled            bool                  `json:"enabled"`
	Category           string                `json:"category,omitempty"`
	DownloadPath       string                `json:"download_path,omitempty"`
	AdditionalSettings map[string]any        `json:"additional_settings"`
}

// DownloadClient is a persisted download client as returned by the
// server. Password is never echoed back.
type DownloadClient struct {
	ID                 int64                 `json:"id"`
	Name               string                `json:"name"`
	ClientType         clienttype.ClientType `json:"client_type"`
	Host               string                `json:"host"`
	Port               int                   `json:"port"`
	UseSSL             bool                  `json:"use_ssl"`
	Username           string                `json:"username"`
	Priority           int                   `json:"priority"`
	TimeoutSeconds     int                   `json:"timeout_seconds"`
	Enabled            bool                  `json:"enabled"`
	Category           string                `json:"category"`
	DownloadPath       string                `json:"download_path"`
	AdditionalSettings map[string]any        `json:"additional_settings"`
}

// TestResult is the outcome of a connection test.
type TestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DownloadItem is one active download on a client.
type DownloadItem struct {
	ClientItemID string  `json:"client_item_id"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	Progress     float64 `json:"progress"`
	ETASeconds   *int64  `json:"eta_seconds,omitempty"`
	SizeBytes    int64   `json:"size_bytes,omitempty"`
}

// ItemsResponse is the server's active download listing for a client.
type ItemsResponse struct {
	Items []DownloadItem `json:"items"`
	Total int            `json:"total"`
}

// SystemStatus reports the server build the toolkit is talking to.
type SystemStatus struct {
	AppName string `json:"app_name"`
	Version string `json:"version"`
}
