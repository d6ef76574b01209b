// Package server runs the fake feed HTTP server.
//
// It provides the server lifecycle: startup, signal handling, and graceful
// shutdown.
package server
