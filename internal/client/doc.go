// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the datafeed command-line application runtime.
//
// It dispatches one command against an authenticated Broadcast session and
// prints provider payloads as JSON, or, for watch, runs the session keeper
// and the quote poller until the process is interrupted.
package client
