// Package logger provides structured logging for the Orchid client using
// zerolog.
//
// The client library itself never logs unless a logger is handed to it;
// this package exists so applications embedding the client can opt in to
// request-level debug logging with the same structured output they use
// elsewhere.
//
// # Usage
//
//	log := logger.NewDefault("orchid")
//	client, err := orchid.New(address, orchid.WithLogger(log))
package logger
