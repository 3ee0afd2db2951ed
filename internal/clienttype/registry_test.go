package clienttype

import "testing"

func TestRegistry_CoversAllSupportedTypes(t *testing.T) {
	if got, want := len(All()), 17; got != want {
		t.Fatalf("len(All()) = %d, want %d", got, want)
	}
	for _, ct := range All() {
		if !Supported(ct) {
			t.Errorf("Supported(%q) = false, want true", ct)
		}
	}
	if Supported("notaclient") {
		t.Error(`Supported("notaclient") = true, want false`)
	}
}

func TestRegistry_FieldsExistInCatalog(t *testing.T) {
	for _, ct := range All() {
		desc := Get(ct)
		for _, f := range desc.Fields() {
			if _, ok := Lookup(f); !ok {
				t.Errorf("%s references field %q with no catalog definition", ct, f)
			}
		}
	}
}

func TestRegistry_DescriptorShape(t *testing.T) {
	folderOnly := map[ClientType]bool{
		TorrentBlackhole: true,
		UsenetBlackhole:  true,
		Pneumatic:        true,
	}

	for _, ct := range All() {
		desc := Get(ct)

		if desc.Protocol != ProtocolTorrent && desc.Protocol != ProtocolUsenet {
			t.Errorf("%s has protocol %q", ct, desc.Protocol)
		}
		if len(desc.RequiredFields) == 0 {
			t.Errorf("%s has no required fields", ct)
		}

		if folderOnly[ct] {
			if desc.SupportsPathMappings {
				t.Errorf("%s should not support path mappings", ct)
			}
			if desc.DefaultPort != 0 {
				t.Errorf("%s has default port %d, want 0", ct, desc.DefaultPort)
			}
			if desc.HasField(FieldHost) || desc.HasField(FieldPort) {
				t.Errorf("%s renders host/port fields", ct)
			}
			continue
		}

		if !desc.SupportsPathMappings {
			t.Errorf("%s should support path mappings", ct)
		}
		if desc.DefaultPort == 0 {
			t.Errorf("%s has no default port", ct)
		}
		if !desc.HasField(FieldHost) || !desc.HasField(FieldPort) {
			t.Errorf("%s is missing host/port fields", ct)
		}
	}
}

func TestRegistry_NoDuplicateFieldsPerType(t *testing.T) {
	for _, ct := range All() {
		seen := map[Field]bool{}
		for _, f := range Get(ct).Fields() {
			if seen[f] {
				t.Errorf("%s lists field %q twice", ct, f)
			}
			seen[f] = true
		}
	}
}

func TestDescriptor_Defaults(t *testing.T) {
	tests := []struct {
		ct      ClientType
		port    int
		urlBase string
		rpcPath string
	}{
		{QBittorrent, 8080, "", ""},
		{Transmission, 9091, "/transmission/", ""},
		{RTorrent, 8080, "RPC2", ""},
		{Aria2, 6800, "", "/jsonrpc"},
		{SABnzbd, 8080, "", ""},
		{NZBGet, 6789, "", ""},
	}
	for _, tt := range tests {
		desc := Get(tt.ct)
		if desc.DefaultPort != tt.port {
			t.Errorf("%s: DefaultPort = %d, want %d", tt.ct, desc.DefaultPort, tt.port)
		}
		if desc.DefaultURLBase != tt.urlBase {
			t.Errorf("%s: DefaultURLBase = %q, want %q", tt.ct, desc.DefaultURLBase, tt.urlBase)
		}
		if desc.DefaultRPCPath != tt.rpcPath {
			t.Errorf("%s: DefaultRPCPath = %q, want %q", tt.ct, desc.DefaultRPCPath, tt.rpcPath)
		}
	}
}
