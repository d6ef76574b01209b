// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/config"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/datafeed"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/utils"
)

const defaultMinRefreshDelay = time.Second

// SessionKeeper extends the session on a fixed period and refreshes the token
// pair either on its own period or shortly before a JWT access token expires,
// whichever comes first.
type SessionKeeper struct {
	job

	feed   datafeed.Datafeed
	cfg    config.ClientWorkers
	logger *logger.Logger

	now             func() time.Time
	minRefreshDelay time.Duration
}

// NewSessionKeeper creates a SessionKeeper for feed. It is idle until Start
// is called.
func NewSessionKeeper(feed datafeed.Datafeed, cfg config.ClientWorkers, log *logger.Logger) *SessionKeeper {
	if cfg.KeepAliveInterval <= 0 {
		cfg.KeepAliveInterval = 5 * time.Minute
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 15 * time.Minute
	}

	return &SessionKeeper{
		feed:            feed,
		cfg:             cfg,
		logger:          log,
		now:             time.Now,
		minRefreshDelay: defaultMinRefreshDelay,
	}
}

// Start implements [Worker].
func (k *SessionKeeper) Start(ctx context.Context) {
	k.start(ctx, k.loop)
}

// Stop implements [Worker].
func (k *SessionKeeper) Stop() {
	k.stop()
}

func (k *SessionKeeper) loop(ctx context.Context) {
	keep := time.NewTicker(k.cfg.KeepAliveInterval)
	defer keep.Stop()

	refresh := time.NewTimer(k.nextRefreshDelay(0))
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keep.C:
			if _, err := k.feed.KeepAlive(ctx); err != nil {
				k.logger.Error().Err(err).Msg("keep alive failed")
			}
		case <-refresh.C:
			if _, ok := k.feed.TokenRefresh(ctx); !ok {
				k.logger.Warn().Msg("token refresh failed, keeping current token")
				refresh.Reset(k.cfg.RefreshInterval)
				continue
			}
			k.logger.Debug().Msg("token refreshed")
			refresh.Reset(k.nextRefreshDelay(k.minRefreshDelay))
		}
	}
}

// nextRefreshDelay is the refresh period, shortened so that a JWT access
// token is refreshed RefreshBefore ahead of its expiry. Opaque tokens have
// no known expiry. The lead never exceeds half the token lifetime, so a
// token shorter than RefreshBefore is still used for half its life.
func (k *SessionKeeper) nextRefreshDelay(floor time.Duration) time.Duration {
	delay := k.cfg.RefreshInterval
	token := k.feed.Tokens().Token

	if exp, ok := utils.TokenExpiry(token); ok {
		lead := k.cfg.RefreshBefore
		if lifetime, ok := utils.TokenLifetime(token); ok {
			lead = min(lead, lifetime/2)
		}
		if untilDue := exp.Sub(k.now()) - lead; untilDue < delay {
			delay = untilDue
		}
	}

	return max(delay, floor)
}
