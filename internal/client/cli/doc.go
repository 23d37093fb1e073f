// Package cli provides the interactive custdesk command-line client.
//
// It wires configuration, the credential store, the REST API client, the
// session manager, and the paginated customer list behind an interactive
// REPL. Typical flow: hydrate the stored session, prompt for credentials if
// needed, then browse and edit the customer table.
//
// Key features:
//   - Login / Signup / Logout against the REST backend
//   - Guarded customer view (unauthenticated users land on the login prompt)
//   - Paginated customer table with page, size, next and prev commands
//   - Add / edit / delete customers with inline field validation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
