// Package probe implements direct connectivity checks against
// download clients, for the types our client libraries cover. Probes
// run from the machine executing the CLI; the server-side test
// endpoint remains the fallback for everything else.
package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
)

// ErrUnsupported is returned by ForPayload for client types without a
// direct probe. Callers fall back to the server-side test endpoint.
var ErrUnsupported = errors.New("no direct probe for client type")

// Probe checks that a download client described by a payload is
// reachable with the configured credentials.
type Probe interface {
	Test(ctx context.Context) error
}

// ForPayload selects the probe matching the payload's client type.
func ForPayload(p api.Payload) (Probe, error) {
	switch p.ClientType {
	case clienttype.QBittorrent:
		return newQBitProbe(p), nil
	case clienttype.Deluge:
		return newDelugeProbe(p), nil
	case clienttype.RTorrent:
		return newRTorrentProbe(p), nil
	case clienttype.TorrentBlackhole:
		return newFolderProbe(p, clienttype.FieldTorrentFolder, clienttype.FieldWatchFolder), nil
	case clienttype.UsenetBlackhole:
		return newFolderProbe(p, clienttype.FieldNzbFolder, clienttype.FieldWatchFolder), nil
	case clienttype.Pneumatic:
		return newFolderProbe(p, clienttype.FieldNzbFolder, clienttype.FieldStrmFolder), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, p.ClientType)
}

// baseAddr builds the client's base URL from the payload's host,
// port, SSL flag and url base.
func baseAddr(p api.Payload) string {
	scheme := "http"
	if p.UseSSL {
		scheme = "https"
	}
	addr := fmt.Sprintf("%s://%s:%d", scheme, p.Host, p.Port)
	if base := setting(p, clienttype.FieldURLBase); base != "" {
		if base[0] != '/' {
			addr += "/"
		}
		addr += base
	}
	return addr
}

// setting reads a string value out of the payload's settings bag.
func setting(p api.Payload, key clienttype.Field) string {
	value, ok := p.AdditionalSettings[string(key)]
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}
