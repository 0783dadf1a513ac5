// Package client is the CLI's gRPC client. It keeps the session token handed
// out by Login and attaches it to every later call, and it translates status
// codes into the errors defined in errors.go.
package client
