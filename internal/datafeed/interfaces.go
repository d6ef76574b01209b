// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package datafeed is an authenticated client for the AE Broadcast quotes
// API.
//
// [New] logs in once and keeps the issued token pair for the lifetime of the
// [Client]. Every request is a single synchronous exchange; there is no
// retry, caching or pooling policy beyond what net/http does by itself.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without switching on
// status codes (e.g. [ErrUnauthorized] for 401, [ErrServerError] for 5xx).
// Transport failures are reported as [*ConnectionError].
package datafeed

import (
	"context"

	"github.com/MKhiriev/go-broadcast-datafeed/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/datafeed_mock.go -package=mock

// Datafeed is the operation set of an authenticated Broadcast session.
// The background workers and the CLI depend on it rather than on [*Client].
type Datafeed interface {
	// Login exchanges credentials for a token pair. It does not store the
	// pair; [New] does that for the initial login.
	Login(ctx context.Context, username, password string) (models.Tokens, error)

	// Logout ends the server-side session and returns the provider payload.
	// The locally held token pair is left as it is.
	Logout(ctx context.Context) (models.Payload, error)

	// KeepAlive extends the server-side session.
	KeepAlive(ctx context.Context) (models.Payload, error)

	// TokenRefresh swaps the current pair for a new one. A false result
	// means the refresh failed and the previous pair is still in use.
	TokenRefresh(ctx context.Context) (models.RefreshStatus, bool)

	// GetQuote requests quotes for req.Symbols restricted to req.Fields.
	// The decoded response body is returned as is.
	GetQuote(ctx context.Context, req models.QuoteRequest) (models.Payload, error)

	// TryGetQuote behaves like GetQuote but reports failures in the payload
	// as {"success": false, "message": ...} instead of returning an error.
	TryGetQuote(ctx context.Context, req models.QuoteRequest) models.Payload

	// Tokens returns a snapshot of the current token pair.
	Tokens() models.Tokens
}
