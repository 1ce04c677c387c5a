// Package server wires and runs the wallet daemon's HTTP bridge server.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
