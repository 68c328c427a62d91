// Package cli provides the interactive jobdeck command-line client.
//
// It wires configuration, the session database, the API client, the auth
// coordinator, and an interactive REPL. Commands map one-to-one onto the
// screens of the Job Platform: public job browsing and the assistant are
// always available, role-specific dashboards sit behind the access guard,
// and a guarded command issued while signed out runs the login flow first.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
