package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/config"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/datafeed"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/workers"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

type App struct {
	feed    datafeed.Datafeed
	fields  []string
	workers config.ClientWorkers

	outMu sync.Mutex
	out   io.Writer

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(feed datafeed.Datafeed, cfg *config.ClientConfig, out io.Writer, log *logger.Logger) *App {
	return &App{
		feed:    feed,
		fields:  cfg.Quote.Fields,
		workers: cfg.Workers,
		out:     out,
		logger:  log,
	}
}

// ValidateArgs checks args before any network I/O is done.
func ValidateArgs(args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch args[0] {
	case "login", "keep", "refresh", "logout":
		if len(args) != 1 {
			return ErrUsage
		}
	case "quote", "try-quote", "watch":
		if len(args) < 2 {
			return ErrUsage
		}
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	return nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if err := ValidateArgs(args); err != nil {
		return err
	}

	switch cmd, operands := args[0], args[1:]; cmd {
	case "login":
		return a.print(a.feed.Tokens())
	case "keep":
		payload, err := a.feed.KeepAlive(ctx)
		if err != nil {
			return fmt.Errorf("keep alive: %w", err)
		}
		return a.print(payload)
	case "refresh":
		status, ok := a.feed.TokenRefresh(ctx)
		if !ok {
			return ErrRefreshFailed
		}
		return a.print(status)
	case "logout":
		payload, err := a.feed.Logout(ctx)
		if err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		return a.print(payload)
	case "quote":
		payload, err := a.feed.GetQuote(ctx, a.quoteRequest(operands))
		if err != nil {
			return fmt.Errorf("get quote: %w", err)
		}
		return a.print(payload)
	case "try-quote":
		return a.print(a.feed.TryGetQuote(ctx, a.quoteRequest(operands)))
	default: // watch
		return a.watch(ctx, operands)
	}
}

func (a *App) watch(ctx context.Context, symbols []string) error {
	keeper := workers.NewSessionKeeper(a.feed, a.workers, a.logger)
	poller := workers.NewQuotePoller(a.feed, a.quoteRequest(symbols), a.workers.PollInterval, func(p models.Payload) {
		if err := a.print(p); err != nil {
			a.logger.Error().Err(err).Msg("write quote")
		}
	}, a.logger)

	ws := workers.NewWorkers(keeper, poller)
	ws.Start(ctx)
	a.logger.Info().Strs("symbols", symbols).Msg("watching quotes")

	<-ctx.Done()
	ws.Stop()

	return nil
}

func (a *App) quoteRequest(symbols []string) models.QuoteRequest {
	return models.NewQuoteRequest(symbols, a.fields...)
}

// print writes v as a single JSON line.
func (a *App) print(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	a.outMu.Lock()
	defer a.outMu.Unlock()
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
