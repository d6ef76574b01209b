package config

import (
	"fmt"
	"time"
)

// ClientFeed holds the settings the datafeed client is constructed with.
type ClientFeed struct {
	BaseURL            string
	Username           string
	Password           string
	KeepAlive          bool
	InsecureSkipVerify bool
	CABundlePath       string
	RequestTimeout     time.Duration
}

// ClientQuote holds quote request defaults.
type ClientQuote struct {
	Fields []string
}

// ClientWorkers holds the schedule of the session keeper and quote poller.
type ClientWorkers struct {
	KeepAliveInterval time.Duration
	RefreshInterval   time.Duration
	RefreshBefore     time.Duration
	PollInterval      time.Duration
}

// ClientConfig is the datafeed CLI view of [StructuredConfig].
type ClientConfig struct {
	// Feed contains the connection settings and credentials.
	Feed ClientFeed
	// Quote contains quote request defaults.
	Quote ClientQuote
	// Workers contains background job settings.
	Workers ClientWorkers
	// LogLevel is the zerolog level name.
	LogLevel string
	// Args are the positional arguments: the command and its operands.
	Args []string
}

// GetClientConfig builds and validates the client view of the merged
// configuration for the given command-line arguments.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the datafeed client.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Feed: ClientFeed{
			BaseURL:            cfg.Feed.BaseURL,
			Username:           cfg.Feed.Username,
			Password:           cfg.Feed.Password,
			KeepAlive:          cfg.Feed.KeepAlive,
			InsecureSkipVerify: cfg.Feed.InsecureSkipVerify,
			CABundlePath:       cfg.Feed.CABundlePath,
			RequestTimeout:     cfg.Feed.RequestTimeout,
		},
		Quote: ClientQuote{Fields: cfg.Quote.Fields},
		Workers: ClientWorkers{
			KeepAliveInterval: cfg.Workers.KeepAliveInterval,
			RefreshInterval:   cfg.Workers.RefreshInterval,
			RefreshBefore:     cfg.Workers.RefreshBefore,
			PollInterval:      cfg.Workers.PollInterval,
		},
		LogLevel: cfg.Log.Level,
		Args:     cfg.Args,
	}
}
