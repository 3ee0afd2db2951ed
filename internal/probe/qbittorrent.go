package probe

import (
	"context"
	"fmt"

	qbittorrent "github.com/autobrr/go-qbittorrent"
	"github.com/rs/zerolog/log"

	"github.com/bookcard-io/bookcard-clients/internal/api"
)

// qbitProbe verifies a qBittorrent WebUI login.
type qbitProbe struct {
	payload api.Payload
}

func newQBitProbe(p api.Payload) *qbitProbe {
	return &qbitProbe{payload: p}
}

func (q *qbitProbe) Test(ctx context.Context) error {
	qb := qbittorrent.NewClient(qbittorrent.Config{
		Host:     baseAddr(q.payload),
		Username: q.payload.Username,
		Password: q.payload.Password,
	})

	if err := qb.LoginCtx(ctx); err != nil {
		log.Debug().Err(err).Str("host", q.payload.Host).Msg("qbittorrent login failed")
		return fmt.Errorf("failed to login to qbittorrent: %w", err)
	}

	log.Debug().Str("host", q.payload.Host).Msg("connected to qbittorrent")
	return nil
}
