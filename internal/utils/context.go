// Package utils provides general-purpose helper utilities shared by the
// datafeed client and the fake feed server: the resty client constructor,
// JSON response writing, JWT issuance and inspection, ID generation and
// type-safe context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// LoginCtxKey is the key used to store the authenticated login in the
// request context once a bearer token has been validated.
var LoginCtxKey = contextKey("login")

// TokenCtxKey is the key used to store the raw bearer token in the request
// context.
var TokenCtxKey = contextKey("token")

// GetLoginFromContext retrieves the authenticated login from ctx.
// ok is false when the value is missing or has an unexpected type.
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginCtxKey).(string)
	return login, ok
}

// GetTokenFromContext retrieves the raw bearer token from ctx.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}
