package probe

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
	"github.com/bookcard-io/bookcard-clients/internal/form"
)

func TestForPayload_SelectsByClientType(t *testing.T) {
	supported := []clienttype.ClientType{
		clienttype.QBittorrent,
		clienttype.Deluge,
		clienttype.RTorrent,
		clienttype.TorrentBlackhole,
		clienttype.UsenetBlackhole,
		clienttype.Pneumatic,
	}
	for _, ct := range supported {
		if _, err := ForPayload(api.Payload{ClientType: ct}); err != nil {
			t.Errorf("ForPayload(%s) = %v, want probe", ct, err)
		}
	}

	_, err := ForPayload(api.Payload{ClientType: clienttype.SABnzbd})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("ForPayload(sabnzbd) = %v, want ErrUnsupported", err)
	}
}

func TestBaseAddr(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		port    int
		ssl     bool
		urlBase string
		want    string
	}{
		{"plain", "nas", 8080, false, "", "http://nas:8080"},
		{"ssl", "nas", 443, true, "", "https://nas:443"},
		{"rooted base", "nas", 9091, false, "/transmission/", "http://nas:9091/transmission/"},
		{"bare base", "nas", 8080, false, "RPC2", "http://nas:8080/RPC2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := api.Payload{
				Host:               tt.host,
				Port:               tt.port,
				UseSSL:             tt.ssl,
				AdditionalSettings: map[string]any{},
			}
			if tt.urlBase != "" {
				p.AdditionalSettings["url_base"] = tt.urlBase
			}
			if got := baseAddr(p); got != tt.want {
				t.Errorf("baseAddr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFolderProbe_CreatesAndProbesFolders(t *testing.T) {
	root := t.TempDir()

	f := form.New(clienttype.TorrentBlackhole)
	f.Set(clienttype.FieldTorrentFolder, filepath.Join(root, "drop"))
	f.Set(clienttype.FieldWatchFolder, filepath.Join(root, "watch"))

	p, err := ForPayload(form.BuildPayload(f))
	if err != nil {
		t.Fatalf("ForPayload: %v", err)
	}
	if err := p.Test(context.Background()); err != nil {
		t.Fatalf("Test: %v", err)
	}
}

func TestFolderProbe_MissingFolderSettingFails(t *testing.T) {
	f := form.New(clienttype.Pneumatic)
	f.Set(clienttype.FieldNzbFolder, filepath.Join(t.TempDir(), "nzb"))
	// strm folder left unset

	p, err := ForPayload(form.BuildPayload(f))
	if err != nil {
		t.Fatalf("ForPayload: %v", err)
	}
	if err := p.Test(context.Background()); err == nil {
		t.Fatal("Test should fail when a folder field is unset")
	}
}
