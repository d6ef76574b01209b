package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a [StructuredConfig]. Parsing stops at the
// first non-flag argument; the remainder is returned in Args. Boolean flags
// given on the command line are also returned as explicit settings.
//
// Flags:
//
//	-base-url Broadcast service root
//	-u / -p login and password
//	-keep-alive send one keep-alive right after login
//	-insecure disable TLS verification (development only)
//	-ca-bundle PEM file with extra trusted certificates
//	-request-timeout per-exchange timeout (e.g., "30s"); 0 waits indefinitely
//	-fields comma separated quote fields (e.g., "ULT,VAR")
//	-keep-alive-interval / -refresh-interval / -refresh-before / -poll-interval worker schedule
//	-log-level zerolog level name
//	-a fake feed listen address in format [host]:[port]
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, explicitBools, error) {
	var (
		cfg            StructuredConfig
		fakeAddress    NetAddress
		fields         string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("datafeed", flag.ContinueOnError)

	fs.StringVar(&cfg.Feed.BaseURL, "base-url", "", "Broadcast service base URL")
	fs.StringVar(&cfg.Feed.Username, "u", "", "Broadcast login")
	fs.StringVar(&cfg.Feed.Password, "p", "", "Broadcast password")
	fs.BoolVar(&cfg.Feed.KeepAlive, "keep-alive", false, "Send one keep-alive right after login")
	fs.BoolVar(&cfg.Feed.InsecureSkipVerify, "insecure", false, "Disable TLS certificate verification (UNSAFE, development only)")
	fs.StringVar(&cfg.Feed.CABundlePath, "ca-bundle", "", "PEM file with additional trusted CA certificates")
	fs.DurationVar(&cfg.Feed.RequestTimeout, "request-timeout", 0, "Per-request timeout (e.g., 30s); 0 waits indefinitely")
	fs.StringVar(&fields, "fields", "", "Comma separated quote fields (e.g., ULT,VAR)")
	fs.DurationVar(&cfg.Workers.KeepAliveInterval, "keep-alive-interval", 0, "Keep-alive period for watch")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Token refresh period for watch")
	fs.DurationVar(&cfg.Workers.RefreshBefore, "refresh-before", 0, "Refresh early when the token expires within this window")
	fs.DurationVar(&cfg.Workers.PollInterval, "poll-interval", 0, "Quote poll period for watch")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.Var(&fakeAddress, "a", "Fake feed net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, explicitBools{}, err
	}

	var bools explicitBools
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keep-alive":
			bools.keepAlive = &cfg.Feed.KeepAlive
		case "insecure":
			bools.insecure = &cfg.Feed.InsecureSkipVerify
		}
	})

	cfg.Quote.Fields = splitCSV(fields)
	cfg.FakeFeed.Address = fakeAddress.String()
	cfg.JSONFilePath = jsonConfigPath
	cfg.Args = fs.Args()

	return &cfg, bools, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
