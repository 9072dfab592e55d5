// Package server wires and runs the transport servers of the
// authentication service.
//
// It orchestrates the HTTP API server and the gRPC health server as a
// single unit: both are started together, stopped on SIGINT, SIGTERM, or
// SIGQUIT, and shut down gracefully before the process exits.
package server
