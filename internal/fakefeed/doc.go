// Package fakefeed implements an in-process stand-in for the AE Broadcast
// authentication and quote endpoints. It is used for local development of
// the datafeed CLI and for end-to-end tests of the datafeed client.
//
// Credentials are checked against a bcrypt hash, access tokens are HS256
// JWTs bound to exactly one refresh token, and quotes are served from an
// in-memory table filled with [Server.SetQuote].
package fakefeed
