// Package server exposes single-transmission decoding over HTTP.
//
// Ownership boundary:
// - gin router and middleware wiring
// - request body to sequence extraction
// - decode error to HTTP status mapping
package server
