// Package server holds configuration for the HTTP report server.
//
// The server itself is assembled in the start command: a Fiber application
// with RayID tracing, request logging and optional API key protection, onto
// which the enabled features register their routes.
package server
