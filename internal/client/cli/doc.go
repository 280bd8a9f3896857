// Package cli provides the interactive SupportPilot command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL whose command set depends on the caller's role. Typical
// flow: restore a persisted session (or prompt for credentials), load the
// ticket collection, and execute user commands.
//
// Key features:
//   - Login / Register / Logout with a locally persisted session
//   - Customers: file tickets and follow their progress
//   - Agents: triage the queue, change ticket status, self-assign
//   - Admins: assign any agent, manage agent accounts, view analytics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
