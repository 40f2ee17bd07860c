// Package http contains the HTTP transport layer: chi handlers that
// accept sales uploads, run the forecasting pipeline through the
// service layer, and serve the resulting forecast and summary insight.
// Failures render as RFC 7807 problem details.
package http
