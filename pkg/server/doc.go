// Package server exposes the calgrid pipeline over HTTP.
//
// Routes:
//
//	GET  /health       liveness probe, never behind basic auth
//	POST /api/layout   body = events (json, yaml, toml, hcl or ics) → grid JSON
//	POST /api/render   body = events → one artifact, chosen with ?output=
//	GET  /             the configured input file rendered as HTML
//
// The input format of a request body is taken from ?format=, then from the
// Content-Type header, and defaults to JSON. Errors are returned as
// {"code": "...", "error": "..."} with a status derived from the error code.
package server
