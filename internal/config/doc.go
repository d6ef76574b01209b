// Package config provides configuration loading, merging, and validation
// facilities for the datafeed CLI and the fake feed server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file (-c / -config / CONFIG)
//  3. Environment variables, after an optional dotenv file is loaded
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] for the datafeed client and
// [GetFakeFeedConfig] for the fake feed server.
package config
