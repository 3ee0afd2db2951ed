package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/zeebo/bencode"

	"github.com/bookcard-io/bookcard-clients/internal/api"
	"github.com/bookcard-io/bookcard-clients/internal/clienttype"
)

// folderProbe verifies folder-based client types (blackholes,
// pneumatic). Each configured folder must exist or be creatable, and
// the drop folder must accept a probe file: clients watching the
// folder ignore it because it never matches a queued download.
type folderProbe struct {
	payload api.Payload
	fields  []clienttype.Field
}

func newFolderProbe(p api.Payload, fields ...clienttype.Field) *folderProbe {
	return &folderProbe{payload: p, fields: fields}
}

func (f *folderProbe) Test(ctx context.Context) error {
	for _, field := range f.fields {
		dir := setting(f.payload, field)
		if dir == "" {
			return fmt.Errorf("%s is not configured", field)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s %q: %w", field, dir, err)
		}
	}

	// the first configured field is the drop folder
	drop := setting(f.payload, f.fields[0])
	if f.payload.ClientType == clienttype.TorrentBlackhole {
		return writeProbeTorrent(drop)
	}
	return writeProbeFile(drop)
}

// probeTorrent is a minimal well-formed torrent so folder watchers
// that validate dropped files do not log noise about the probe.
type probeTorrent struct {
	Announce string `bencode:"announce"`
	Info     struct {
		Name        string `bencode:"name"`
		PieceLength int    `bencode:"piece length"`
		Pieces      string `bencode:"pieces"`
		Length      int    `bencode:"length"`
	} `bencode:"info"`
}

func writeProbeTorrent(dir string) error {
	var t probeTorrent
	t.Announce = "http://localhost/announce"
	t.Info.Name = "bookcard-probe"
	t.Info.PieceLength = 16384
	t.Info.Pieces = ""
	t.Info.Length = 0

	data, err := bencode.EncodeBytes(t)
	if err != nil {
		return fmt.Errorf("failed to encode probe torrent: %w", err)
	}

	path := filepath.Join(dir, ".bookcard-probe.torrent")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write to torrent folder: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove probe torrent: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("torrent folder accepted probe file")
	return nil
}

func writeProbeFile(dir string) error {
	path := filepath.Join(dir, ".bookcard-probe")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return fmt.Errorf("failed to write to folder: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove probe file: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("folder accepted probe file")
	return nil
}
