package form

import (
	"testing"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
)

func TestFieldInput_RequiredOnlyForRenderedHostPort(t *testing.T) {
	qbit := New(clienttype.QBittorrent)
	if !FieldInput(qbit, clienttype.FieldHost).Required {
		t.Error("qbittorrent host should be required")
	}
	if !FieldInput(qbit, clienttype.FieldPort).Required {
		t.Error("qbittorrent port should be required")
	}
	if FieldInput(qbit, clienttype.FieldUsername).Required {
		t.Error("username should never be marked required")
	}

	// folder-based types never render host/port, so nothing is
	// required for them
	for _, ct := range []clienttype.ClientType{clienttype.Pneumatic, clienttype.TorrentBlackhole, clienttype.UsenetBlackhole} {
		f := New(ct)
		if FieldInput(f, clienttype.FieldHost).Required {
			t.Errorf("%s: host must not be required when not rendered", ct)
		}
		if FieldInput(f, clienttype.FieldPort).Required {
			t.Errorf("%s: port must not be required when not rendered", ct)
		}
	}
}

func TestFieldInput_PasswordPlaceholderInEditMode(t *testing.T) {
	create := New(clienttype.Deluge)
	if got := FieldInput(create, clienttype.FieldPassword).Placeholder; got == passwordKeepPlaceholder {
		t.Error("create mode must not show the keep-unchanged placeholder")
	}

	edit := FromClient(&api.DownloadClient{ClientType: clienttype.Deluge})
	if got := FieldInput(edit, clienttype.FieldPassword).Placeholder; got != passwordKeepPlaceholder {
		t.Errorf("edit mode placeholder = %q, want %q", got, passwordKeepPlaceholder)
	}
}

func TestSectionInputs_FollowDescriptorOrder(t *testing.T) {
	f := New(clienttype.Aria2)

	basic := BasicInputs(f)
	desc := clienttype.Get(clienttype.Aria2)
	if len(basic) != len(desc.RequiredFields) {
		t.Fatalf("len(BasicInputs) = %d, want %d", len(basic), len(desc.RequiredFields))
	}
	for i, input := range basic {
		if input.Key != desc.RequiredFields[i] {
			t.Errorf("basic[%d].Key = %q, want %q", i, input.Key, desc.RequiredFields[i])
		}
		if input.Label == "" {
			t.Errorf("basic[%d] (%q) has no label", i, input.Key)
		}
	}

	advanced := AdvancedInputs(f)
	if len(advanced) != len(desc.AdvancedFields) {
		t.Fatalf("len(AdvancedInputs) = %d, want %d", len(advanced), len(desc.AdvancedFields))
	}
}

func TestFieldInput_KindsAndValues(t *testing.T) {
	f := New(clienttype.SABnzbd)
	f.APIKey = "xyz"

	apiKey := FieldInput(f, clienttype.FieldAPIKey)
	if apiKey.Kind != clienttype.KindPassword {
		t.Errorf("api_key kind = %q, want password", apiKey.Kind)
	}
	if apiKey.Value != "xyz" {
		t.Errorf("api_key value = %v, want xyz", apiKey.Value)
	}

	port := FieldInput(f, clienttype.FieldPort)
	if port.Kind != clienttype.KindNumber {
		t.Errorf("port kind = %q, want number", port.Kind)
	}
	if port.Value != 8080 {
		t.Errorf("port value = %v, want descriptor default 8080", port.Value)
	}

	ssl := FieldInput(f, clienttype.FieldUseSSL)
	if ssl.Kind != clienttype.KindCheckbox {
		t.Errorf("use_ssl kind = %q, want checkbox", ssl.Kind)
	}
	if ssl.Value != false {
		t.Errorf("use_ssl value = %v, want false", ssl.Value)
	}
}
