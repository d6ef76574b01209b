// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks invariants shared by every view of the merged
// [StructuredConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Feed.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidFeedConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Feed.Username == "" || cfg.Feed.Password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidFeedConfigs)
	}

	u, err := url.Parse(cfg.Feed.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be absolute", ErrInvalidFeedConfigs, cfg.Feed.BaseURL)
	}

	if cfg.Feed.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidFeedConfigs)
	}

	if cfg.Feed.InsecureSkipVerify && cfg.Feed.CABundlePath != "" {
		return fmt.Errorf("%w: ca bundle has no effect with verification disabled", ErrInvalidFeedConfigs)
	}

	w := cfg.Workers
	if w.KeepAliveInterval <= 0 || w.RefreshInterval <= 0 || w.PollInterval <= 0 || w.RefreshBefore < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *FakeFeedConfig) validate() error {
	if cfg.Address == "" || cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("%w: address and credentials are required", ErrInvalidFakeFeedConfigs)
	}

	if cfg.TokenSignKey == "" || cfg.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidFakeFeedConfigs)
	}

	return nil
}
