package datafeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/config"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/utils"
	"github.com/MKhiriev/go-broadcast-datafeed/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath   = "/Authentication/v1/login"
	logoutPath  = "/Authentication/v1/logout"
	keepPath    = "/Authentication/v1/keep"
	refreshPath = "/Authentication/v1/refresh"
	quotePath   = "/stock/v1/quote/request"
)

// Client is an authenticated Broadcast session. It is created by [New].
type Client struct {
	http    *utils.HTTPClient
	baseURL string
	creds   models.Credentials

	mu     sync.RWMutex
	tokens models.Tokens

	logger *logger.Logger
}

var _ Datafeed = (*Client)(nil)

// New builds the transport for cfg, logs in with cfg.Username and
// cfg.Password and, when cfg.KeepAlive is set, extends the new session once.
//
// A login or keep-alive failure is returned unchanged and no client is
// produced.
func New(ctx context.Context, cfg config.ClientFeed, log *logger.Logger) (*Client, error) {
	c, err := newClient(cfg, log)
	if err != nil {
		return nil, err
	}

	tokens, err := c.Login(ctx, cfg.Username, cfg.Password)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.setTokens(tokens)

	if cfg.KeepAlive {
		if _, err = c.KeepAlive(ctx); err != nil {
			c.Close()
			return nil, err
		}
	}

	return c, nil
}

func newClient(cfg config.ClientFeed, log *logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.Nop()
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	tlsCfg, err := newTLSConfig(cfg, log)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL: baseURL,
		Headers: map[string]string{
			"accept":       "application/json",
			"Content-Type": "application/json",
		},
		TLS:     tlsCfg,
		Timeout: cfg.RequestTimeout,
	})

	return &Client{
		http:    client,
		baseURL: baseURL + "/",
		creds:   models.Credentials{Username: cfg.Username, Password: cfg.Password},
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = config.DefaultBaseURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address %q must include host and scheme", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Close releases idle connections held by the transport.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// Username returns the login the session was opened with.
func (c *Client) Username() string {
	return c.creds.Username
}

// BaseURL returns the service root, always with a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Tokens implements [Datafeed].
func (c *Client) Tokens() models.Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tokens
}

func (c *Client) setTokens(t models.Tokens) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = t
}

// Login implements [Datafeed]. It POSTs the credentials to
// Authentication/v1/login and returns the pair found in the response body.
func (c *Client) Login(ctx context.Context, username, password string) (models.Tokens, error) {
	resp, err := c.do("login", c.http.R().
		SetContext(ctx).
		SetBody(models.NewLoginRequest(username, password)), http.MethodPost, loginPath)
	if err != nil {
		return models.Tokens{}, err
	}

	var tokens models.Tokens
	if err = json.Unmarshal(resp.Body(), &tokens); err != nil {
		return models.Tokens{}, fmt.Errorf("decode login response: %w", err)
	}
	if !tokens.Valid() {
		return models.Tokens{}, fmt.Errorf("decode login response: %w", ErrMissingTokens)
	}

	return tokens, nil
}

// Logout implements [Datafeed].
func (c *Client) Logout(ctx context.Context) (models.Payload, error) {
	resp, err := c.do("logout", c.authedRequest(ctx), http.MethodGet, logoutPath)
	if err != nil {
		return nil, err
	}

	return decodePayload("logout", resp)
}

// KeepAlive implements [Datafeed].
func (c *Client) KeepAlive(ctx context.Context) (models.Payload, error) {
	resp, err := c.do("keep alive", c.authedRequest(ctx), http.MethodGet, keepPath)
	if err != nil {
		return nil, err
	}

	return decodePayload("keep alive", resp)
}

// TokenRefresh implements [Datafeed]. It sends the current pair, with the
// bearer header attached, and adopts the pair returned in the body. Any
// failure leaves the current pair untouched and yields false.
func (c *Client) TokenRefresh(ctx context.Context) (models.RefreshStatus, bool) {
	current := c.Tokens()

	resp, err := c.do("token refresh", c.authedRequest(ctx).
		SetBody(models.RefreshRequest{RefreshToken: current.RefreshToken, Token: current.Token}),
		http.MethodPost, refreshPath)
	if err != nil {
		return models.RefreshStatus{}, false
	}

	var tokens models.Tokens
	if err = json.Unmarshal(resp.Body(), &tokens); err != nil || !tokens.Valid() {
		c.logger.Error().Err(err).Str("op", "token refresh").Msg("response carries no usable token pair")
		return models.RefreshStatus{}, false
	}

	c.setTokens(tokens)
	return models.RefreshStatus{Status: resp.StatusCode(), Success: true}, true
}

// GetQuote implements [Datafeed].
func (c *Client) GetQuote(ctx context.Context, req models.QuoteRequest) (models.Payload, error) {
	if err := validateQuoteRequest(req); err != nil {
		return nil, err
	}
	if req.Fields == nil {
		req.Fields = []string{}
	}

	resp, err := c.do("get quote", c.authedRequest(ctx).SetBody(req), http.MethodPost, quotePath)
	if err != nil {
		return nil, err
	}

	return decodePayload("get quote", resp)
}

// TryGetQuote implements [Datafeed].
func (c *Client) TryGetQuote(ctx context.Context, req models.QuoteRequest) models.Payload {
	payload, err := c.GetQuote(ctx, req)
	if err != nil {
		return models.FailurePayload(err)
	}
	return payload
}

func validateQuoteRequest(req models.QuoteRequest) error {
	if len(req.Symbols) == 0 {
		return fmt.Errorf("%w: no symbols", ErrInvalidQuoteRequest)
	}
	for i, s := range req.Symbols {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: blank symbol at position %d", ErrInvalidQuoteRequest, i)
		}
	}
	return nil
}

// authedRequest attaches the token that is current at call time.
func (c *Client) authedRequest(ctx context.Context) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token := c.Tokens().Token; token != "" {
		req.SetHeader("authorization", "Bearer "+token)
	}
	return req
}

// do executes req and classifies the outcome. Transport failures become
// [*ConnectionError], non-2xx responses [*HTTPStatusError].
func (c *Client) do(op string, req *resty.Request, method, path string) (*resty.Response, error) {
	start := time.Now()

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error().Err(err).Str("op", op).Dur("duration", time.Since(start)).Msg("request failed")
		return nil, &ConnectionError{Op: op, Cause: err}
	}

	c.logger.Debug().
		Str("op", op).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("exchange completed")

	if err = mapHTTPError(resp); err != nil {
		c.logger.Error().Err(err).Str("op", op).Msg("unexpected response status")
		return nil, err
	}

	return resp, nil
}

// decodePayload decodes a 2xx body. Broadcast answers every operation with a
// JSON object; a valid array, scalar or null body is reported as
// ErrUnexpectedPayload rather than passed on as an empty map.
func decodePayload(op string, resp *resty.Response) (models.Payload, error) {
	var body any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", op, err)
	}

	object, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode %s response: %w: got %T", op, ErrUnexpectedPayload, body)
	}
	return models.Payload(object), nil
}
