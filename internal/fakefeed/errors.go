// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakefeed

import "errors"

// Sentinel errors used by the fake feed handlers and the authentication
// middleware. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidCredentials is returned by login for an unknown user, a wrong
	// password or a foreign application id.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownSession is returned when a token is valid but its session was
	// revoked by logout or replaced by a refresh.
	ErrUnknownSession = errors.New("unknown session")

	// ErrRefreshMismatch is returned when the refresh token does not belong
	// to the presented access token.
	ErrRefreshMismatch = errors.New("refresh token does not match session")

	// ErrNoSymbols is returned by the quote endpoint for an empty symbol list.
	ErrNoSymbols = errors.New("no symbols requested")
)
