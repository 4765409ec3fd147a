// Package httpserver provides the HTTP server hosting the status and
// health endpoints, with graceful shutdown.
package httpserver
