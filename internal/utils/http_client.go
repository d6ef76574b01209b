package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prefixed to every relative request path.
	BaseURL string
	// Headers are sent with every request unless overridden per request.
	Headers map[string]string
	// TLS is the client TLS configuration. Nil keeps resty's default.
	TLS *tls.Config
	// Timeout bounds a whole exchange. Zero means no timeout.
	Timeout time.Duration
}

// NewHTTPClient creates an independent resty-backed client configured from
// opts. Each call returns a client with its own transport and connection
// pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://svc.aebroadcast.com.br"})
//	resp, err := client.R().Get("/Authentication/v1/keep")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeaders(opts.Headers).
		SetTimeout(opts.Timeout)

	if opts.TLS != nil {
		client.SetTLSClientConfig(opts.TLS)
	}

	return &HTTPClient{Client: client}
}
