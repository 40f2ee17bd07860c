// Package services implements the business logic layer between the HTTP
// handlers and the data pipeline. The forecast service owns the full
// ingest-to-forecast run, and the health service reports readiness.
//
// Services take their dependencies through constructors, propagate
// context for cancellation and tracing, and surface failures as typed
// errors the transport layer translates into problem responses.
package services
