package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8089},
			expected: "localhost:8089",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8089",
			expectedAddr: NetAddress{Host: "localhost", Port: 8089},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:         "empty host",
			input:        ":8089",
			expectedAddr: NetAddress{Host: "", Port: 8089},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number is a positive integer up to 65535",
		},
		{
			name:        "non numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "bad ip",
			input:       "example.com:80",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.EqualError(t, err, tt.errorMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-base-url", "https://feed.example/",
		"-u", "alice",
		"-p", "secret",
		"-keep-alive",
		"-ca-bundle", "/etc/ca.pem",
		"-request-timeout", "15s",
		"-fields", "ULT, VAR,,",
		"-keep-alive-interval", "2m",
		"-refresh-interval", "10m",
		"-refresh-before", "30s",
		"-poll-interval", "5s",
		"-log-level", "debug",
		"-a", "127.0.0.1:9000",
		"-config", "/tmp/cfg.json",
		"quote", "PETR4", "VALE3",
	}

	cfg, _, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "https://feed.example/", cfg.Feed.BaseURL)
	assert.Equal(t, "alice", cfg.Feed.Username)
	assert.Equal(t, "secret", cfg.Feed.Password)
	assert.True(t, cfg.Feed.KeepAlive)
	assert.False(t, cfg.Feed.InsecureSkipVerify)
	assert.Equal(t, "/etc/ca.pem", cfg.Feed.CABundlePath)
	assert.Equal(t, 15*time.Second, cfg.Feed.RequestTimeout)
	assert.Equal(t, []string{"ULT", "VAR"}, cfg.Quote.Fields)
	assert.Equal(t, 2*time.Minute, cfg.Workers.KeepAliveInterval)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.Workers.RefreshBefore)
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.FakeFeed.Address)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
	assert.Equal(t, []string{"quote", "PETR4", "VALE3"}, cfg.Args)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, _, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Feed.BaseURL)
	assert.Nil(t, cfg.Quote.Fields)
	assert.Empty(t, cfg.FakeFeed.Address)
	assert.Empty(t, cfg.Args)
}

func TestParseFlags_RecordsExplicitBools(t *testing.T) {
	_, bools, err := parseFlags([]string{"-insecure=false", "login"})
	require.NoError(t, err)

	require.NotNil(t, bools.insecure)
	assert.False(t, *bools.insecure)
	assert.Nil(t, bools.keepAlive)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, _, err := parseFlags([]string{"-definitely-not-a-flag"})
	require.Error(t, err)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, _, err := parseFlags([]string{"-a", "nope"})
	require.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Nil(t, splitCSV(" , "))
	assert.Equal(t, []string{"ULT"}, splitCSV("ULT"))
	assert.Equal(t, []string{"ULT", "VAR"}, splitCSV(" ULT ,VAR "))
}
