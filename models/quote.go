// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuoteRequest is the wire body of POST stock/v1/quote/request.
//
// Symbols and Fields are ordered. An empty Fields list asks the provider for
// every field it knows about.
type QuoteRequest struct {
	Symbols []string `json:"symbols"`
	Fields  []string `json:"fields"`
}

// NewQuoteRequest builds a request for symbols, restricted to fields when
// any are given. A nil fields slice is normalised to an empty one so that it
// is encoded as [] rather than null.
func NewQuoteRequest(symbols []string, fields ...string) QuoteRequest {
	if fields == nil {
		fields = []string{}
	}
	return QuoteRequest{Symbols: symbols, Fields: fields}
}
