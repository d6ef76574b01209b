package config

import (
	"fmt"
	"time"
)

// FakeFeedConfig is the fake feed server view of [StructuredConfig].
type FakeFeedConfig struct {
	Address       string
	Username      string
	Password      string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	LogLevel      string
}

// GetFakeFeedConfig builds and validates the fake feed view of the merged
// configuration for the given command-line arguments.
func GetFakeFeedConfig(args []string) (*FakeFeedConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	fakeCfg := &FakeFeedConfig{
		Address:       cfg.FakeFeed.Address,
		Username:      cfg.FakeFeed.Username,
		Password:      cfg.FakeFeed.Password,
		TokenSignKey:  cfg.FakeFeed.TokenSignKey,
		TokenIssuer:   cfg.FakeFeed.TokenIssuer,
		TokenDuration: cfg.FakeFeed.TokenDuration,
		LogLevel:      cfg.Log.Level,
	}

	return fakeCfg, fakeCfg.validate()
}
