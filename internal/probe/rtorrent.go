package probe

import (
	"context"
	"fmt"

	rtorrent "github.com/autobrr/go-rtorrent"
	"github.com/rs/zerolog/log"

	"github.com/bookcard-io/bookcard-clients/internal/api"
)

// rtorrentProbe verifies an rTorrent XML-RPC endpoint by querying the
// client name.
type rtorrentProbe struct {
	payload api.Payload
}

func newRTorrentProbe(p api.Payload) *rtorrentProbe {
	return &rtorrentProbe{payload: p}
}

func (r *rtorrentProbe) Test(ctx context.Context) error {
	rt := rtorrent.NewClient(rtorrent.Config{
		Addr:      baseAddr(r.payload),
		BasicUser: r.payload.Username,
		BasicPass: r.payload.Password,
	})

	if _, err := rt.Name(ctx); err != nil {
		log.Debug().Err(err).Str("host", r.payload.Host).Msg("rtorrent connection failed")
		return fmt.Errorf("failed to connect to rtorrent: %w", err)
	}

	log.Debug().Str("host", r.payload.Host).Msg("connected to rtorrent")
	return nil
}
