// Package app assembles the application: configuration, logging,
// tracing, metrics, services, the chi router with its middleware
// chain, and the HTTP server lifecycle.
package app
