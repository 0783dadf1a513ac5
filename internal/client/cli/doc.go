// Package cli implements the interactive eventplanner client: a small REPL
// that registers, logs in and manages the user's events over gRPC.
//
//	Not logged in:
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - list | l       list your events
//	  - add            create an event (interactive)
//	  - show <id>      show one event
//	  - session        show who you are logged in as
//	  - logout         forget the session token
package cli
