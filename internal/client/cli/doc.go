// Package cli provides the interactive jobdeck command-line client.
//
// It wires configuration, the local token store, the API client, and an
// interactive REPL. On startup a persisted session is reconciled in the
// background; navigation between views goes through the route guard, so
// protected views stay pending until the session state is known.
//
// Key features:
//   - Login / Register / Logout
//   - Job search, detail view, apply, save
//   - Profile view and update
//   - Employer job posting
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
