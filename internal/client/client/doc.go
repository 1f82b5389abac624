// Package client implements the HTTP client the CLI uses to talk to the
// bookmarks API.
//
// Transport failures are reported as ErrUnavailable. Error responses are
// decoded into *APIError; a 401 also matches ErrUnauthorized, which tells the
// caller the saved token is no longer usable.
package client
