package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/client"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/config"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/datafeed"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

// run executes one command and returns the process exit code. Every deferred
// cleanup has finished by the time it returns.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.GetClientConfig(args)
	if err != nil {
		logger.NewLogger("datafeed", "info").Error().Err(err).Msg("error getting configs")
		return exitError
	}
	log := logger.NewLogger("datafeed", cfg.LogLevel)

	if err = client.ValidateArgs(cfg.Args); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	feed, err := datafeed.New(ctx, cfg.Feed, log)
	if err != nil {
		log.Error().Err(err).Msg("create datafeed session")
		return exitError
	}
	defer feed.Close()

	app := client.NewApp(feed, cfg, stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		if errors.Is(err, client.ErrUsage) {
			return exitUsage
		}
		return exitError
	}

	return exitOK
}
