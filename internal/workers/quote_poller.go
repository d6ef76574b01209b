package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/datafeed"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

// QuotePoller requests the same quotes on a fixed period and hands every
// payload, failed or not, to sink.
type QuotePoller struct {
	job

	feed     datafeed.Datafeed
	req      models.QuoteRequest
	interval time.Duration
	sink     func(models.Payload)
	logger   *logger.Logger
}

// NewQuotePoller creates a QuotePoller. It polls once right after Start and
// then every interval.
func NewQuotePoller(feed datafeed.Datafeed, req models.QuoteRequest, interval time.Duration, sink func(models.Payload), log *logger.Logger) *QuotePoller {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	return &QuotePoller{feed: feed, req: req, interval: interval, sink: sink, logger: log}
}

// Start implements [Worker].
func (p *QuotePoller) Start(ctx context.Context) {
	p.start(ctx, p.loop)
}

// Stop implements [Worker].
func (p *QuotePoller) Stop() {
	p.stop()
}

func (p *QuotePoller) loop(ctx context.Context) {
	p.poll(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.poll(ctx)
		}
	}
}

func (p *QuotePoller) poll(ctx context.Context) {
	payload := p.feed.TryGetQuote(ctx, p.req)
	if payload.Failed() {
		p.logger.Warn().Str("message", payload.Message()).Msg("quote poll failed")
	}
	if ctx.Err() != nil {
		return
	}
	p.sink(payload)
}
