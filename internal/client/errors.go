package client

import "errors"

var (
	// ErrUsage reports a missing or unknown command, or missing operands.
	ErrUsage = errors.New("usage: datafeed [flags] login|keep|refresh|logout|quote SYM...|try-quote SYM...|watch SYM...")
	// ErrRefreshFailed is returned by the refresh command when the provider
	// did not issue a new token pair.
	ErrRefreshFailed = errors.New("token refresh failed")
)
