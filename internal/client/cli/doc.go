// Package cli provides the interactive bookmarks command-line client.
//
// It wires configuration, the saved session, the API client and an
// interactive REPL. A background watcher pings the server and shows whether
// it is reachable in the prompt.
//
// Commands:
//   - register / login / logout
//   - me / editme
//   - list / add / show / edit / delete
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
