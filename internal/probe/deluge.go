package probe

import (
	"context"
	"fmt"

	"github.com/autobrr/go-deluge"
	"github.com/rs/zerolog/log"

	"github.com/bookcard-io/bookcard-clients/internal/api"
)

// delugeProbe verifies a Deluge daemon connection, trying v2 first
// and falling back to v1.
type delugeProbe struct {
	payload api.Payload
}

func newDelugeProbe(p api.Payload) *delugeProbe {
	return &delugeProbe{payload: p}
}

func (d *delugeProbe) Test(ctx context.Context) error {
	settings := deluge.Settings{
		Hostname: d.payload.Host,
		Port:     uint(d.payload.Port),
		Login:    d.payload.Username,
		Password: d.payload.Password,
	}

	v2 := deluge.NewV2(settings)
	if err := v2.Connect(ctx); err == nil {
		defer v2.Close()
		log.Debug().Str("host", d.payload.Host).Msg("connected to deluge v2")
		return nil
	}

	v1 := deluge.NewV1(settings)
	if err := v1.Connect(ctx); err != nil {
		log.Debug().Err(err).Str("host", d.payload.Host).Msg("deluge connection failed")
		return fmt.Errorf("failed to connect to deluge: %w", err)
	}
	defer v1.Close()

	log.Debug().Str("host", d.payload.Host).Msg("connected to deluge v1")
	return nil
}
