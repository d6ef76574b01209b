package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/config"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/fakefeed"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/server"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetFakeFeedConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("fakefeed", "info").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewLogger("fakefeed", cfg.LogLevel)

	feed, err := fakefeed.NewServer(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating fake feed")
	}
	for symbol, fields := range fakefeed.DemoQuotes() {
		feed.SetQuote(symbol, fields)
	}

	srv, err := server.NewServer(feed.Init(), cfg.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
