package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// accept either Go duration strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	Feed struct {
		BaseURL            string   `json:"base_url"`
		Username           string   `json:"username"`
		Password           string   `json:"password"`
		KeepAlive          *bool    `json:"keep_alive"`
		InsecureSkipVerify *bool    `json:"insecure_skip_verify"`
		CABundlePath       string   `json:"ca_bundle"`
		RequestTimeout     Duration `json:"request_timeout"`
	} `json:"feed,omitempty"`

	Quote struct {
		Fields []string `json:"fields"`
	} `json:"quote,omitempty"`

	Workers struct {
		KeepAliveInterval Duration `json:"keep_alive_interval"`
		RefreshInterval   Duration `json:"refresh_interval"`
		RefreshBefore     Duration `json:"refresh_before"`
		PollInterval      Duration `json:"poll_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	FakeFeed struct {
		Address       string   `json:"address"`
		Username      string   `json:"username"`
		Password      string   `json:"password"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"fakefeed,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, explicitBools, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, explicitBools{}, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, explicitBools{}, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Feed: Feed{
			BaseURL:        jsonCfg.Feed.BaseURL,
			Username:       jsonCfg.Feed.Username,
			Password:       jsonCfg.Feed.Password,
			CABundlePath:   jsonCfg.Feed.CABundlePath,
			RequestTimeout: time.Duration(jsonCfg.Feed.RequestTimeout),
		},
		Quote: Quote{
			Fields: jsonCfg.Quote.Fields,
		},
		Workers: Workers{
			KeepAliveInterval: time.Duration(jsonCfg.Workers.KeepAliveInterval),
			RefreshInterval:   time.Duration(jsonCfg.Workers.RefreshInterval),
			RefreshBefore:     time.Duration(jsonCfg.Workers.RefreshBefore),
			PollInterval:      time.Duration(jsonCfg.Workers.PollInterval),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		FakeFeed: FakeFeed{
			Address:       jsonCfg.FakeFeed.Address,
			Username:      jsonCfg.FakeFeed.Username,
			Password:      jsonCfg.FakeFeed.Password,
			TokenSignKey:  jsonCfg.FakeFeed.TokenSignKey,
			TokenIssuer:   jsonCfg.FakeFeed.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.FakeFeed.TokenDuration),
		},
	}

	bools := explicitBools{
		keepAlive: jsonCfg.Feed.KeepAlive,
		insecure:  jsonCfg.Feed.InsecureSkipVerify,
	}
	bools.apply(cfg)

	return cfg, bools, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
