package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
)

func TestParseBaseURL(t *testing.T) {
	if _, err := parseBaseURL(""); err == nil {
		t.Fatal("empty server url should be rejected")
	}

	u, err := parseBaseURL("nas.local:8337")
	if err != nil {
		t.Fatalf("parseBaseURL: %v", err)
	}
	if u.Scheme != "http" || u.Host != "nas.local:8337" {
		t.Fatalf("url = %q, want http://nas.local:8337", u.String())
	}

	u, err = parseBaseURL("https://books.example.com/path?x=1#f")
	if err != nil {
		t.Fatalf("parseBaseURL: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_EndpointsAndHeaders(t *testing.T) {
	t.Parallel()

	var gotAPIKey, gotMethod, gotPath string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-Api-Key")
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/api/download_clients" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]DownloadClient{{ID: 1, Name: "qbit"}})
		case r.URL.Path == "/api/download_clients" && r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(DownloadClient{ID: 2, Name: "new"})
		case r.URL.Path == "/api/download_clients/2/test":
			json.NewEncoder(w).Encode(TestResult{Success: true, Message: "OK"})
		case r.URL.Path == "/api/download_clients/2/items":
			json.NewEncoder(w).Encode(ItemsResponse{Items: []DownloadItem{{ClientItemID: "a", Title: "Book", Progress: 0.5}}, Total: 1})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "key123", 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx := context.Background()

	clients, err := c.ListDownloadClients(ctx)
	if err != nil {
		t.Fatalf("ListDownloadClients: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "qbit" {
		t.Fatalf("ListDownloadClients = %+v", clients)
	}
	if gotAPIKey != "key123" {
		t.Errorf("X-Api-Key = %q", gotAPIKey)
	}

	created, err := c.CreateDownloadClient(ctx, Payload{
		Name:               "new",
		ClientType:         clienttype.QBittorrent,
		Host:               "localhost",
		AdditionalSettings: map[string]any{},
	})
	if err != nil {
		t.Fatalf("CreateDownloadClient: %v", err)
	}
	if created.ID != 2 {
		t.Errorf("created.ID = %d, want 2", created.ID)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("create method = %q", gotMethod)
	}
	if !strings.Contains(string(gotBody), `"client_type":"qbittorrent"`) {
		t.Errorf("create body = %s", gotBody)
	}
	if !strings.Contains(string(gotBody), `"additional_settings":{}`) {
		t.Errorf("create body missing empty settings bag: %s", gotBody)
	}

	result, err := c.TestConnection(ctx, 2)
	if err != nil {
		t.Fatalf("TestConnection: %v", err)
	}
	if !result.Success || result.Message != "OK" {
		t.Errorf("TestConnection = %+v", result)
	}
	if gotPath != "/api/download_clients/2/test" {
		t.Errorf("test path = %q", gotPath)
	}

	items, err := c.GetClientItems(ctx, 2)
	if err != nil {
		t.Fatalf("GetClientItems: %v", err)
	}
	if items.Total != 1 || items.Items[0].Title != "Book" {
		t.Errorf("GetClientItems = %+v", items)
	}
}

func TestClient_DecodesAPIErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "name already in use"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.CreateDownloadClient(context.Background(), Payload{Name: "dup"})
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	if !strings.Contains(err.Error(), "name already in use") {
		t.Errorf("error = %v, want server message included", err)
	}
	if !strings.Contains(err.Error(), "409") {
		t.Errorf("error = %v, want status code included", err)
	}
}

func TestClient_DeleteSendsNoBody(t *testing.T) {
	t.Parallel()

	var gotMethod string
	var gotLength int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotLength = r.ContentLength
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := c.DeleteDownloadClient(context.Background(), 5); err != nil {
		t.Fatalf("DeleteDownloadClient: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q", gotMethod)
	}
	if gotLength > 0 {
		t.Errorf("delete request carried a body of %d bytes", gotLength)
	}
}
