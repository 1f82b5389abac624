// Package common contains shared constants and sentinel errors used across
// the bookmarks server and its CLI client.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme expected in AuthorizationHeaderName.
const BearerScheme = "Bearer"

// RequestIDHeaderName is echoed back on every response and attached to log lines.
const RequestIDHeaderName = "X-Request-ID"
