package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// explicitBools holds the boolean settings a source set explicitly. mergo
// never copies a zero value, so an explicit false is applied after the merge
// of its layer.
type explicitBools struct {
	keepAlive *bool
	insecure  *bool
}

func (e explicitBools) apply(cfg *StructuredConfig) {
	if e.keepAlive != nil {
		cfg.Feed.KeepAlive = *e.keepAlive
	}
	if e.insecure != nil {
		cfg.Feed.InsecureSkipVerify = *e.insecure
	}
}

// envExplicitBools pins the booleans whose variables are present and
// non-empty in the environment.
func envExplicitBools(cfg *StructuredConfig) explicitBools {
	var e explicitBools
	if v, ok := os.LookupEnv("BROADCAST_KEEP_ALIVE"); ok && v != "" {
		keepAlive := cfg.Feed.KeepAlive
		e.keepAlive = &keepAlive
	}
	if v, ok := os.LookupEnv("BROADCAST_INSECURE_SKIP_VERIFY"); ok && v != "" {
		insecure := cfg.Feed.InsecureSkipVerify
		e.insecure = &insecure
	}
	return e
}

// configBuilder collects configuration layers and merges them in priority
// order: defaults, JSON file, environment, flags. Each later layer overrides
// the non-zero fields of the earlier ones.
type configBuilder struct {
	defaults *StructuredConfig
	json     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error

	jsonBools  explicitBools
	envBools   explicitBools
	flagsBools explicitBools
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	layers := []struct {
		cfg   *StructuredConfig
		bools explicitBools
	}{
		{cfg: b.defaults},
		{cfg: b.json, bools: b.jsonBools},
		{cfg: b.env, bools: b.envBools},
		{cfg: b.flags, bools: b.flagsBools},
	}

	config := new(StructuredConfig)
	for _, layer := range layers {
		if layer.cfg == nil {
			continue
		}
		if err := mergo.Merge(config, layer.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		layer.bools.apply(config)
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = Default()
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	b.envBools = envExplicitBools(envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, flagsBools, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.flags = flagsCfg
	b.flagsBools = flagsBools
	return b
}

// withJSON loads the JSON file named by the flags or, failing that, by the
// environment. It must run after withEnv and withFlags.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, jsonBools, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.json = jsonCfg
	b.jsonBools = jsonBools
	return b
}
