// Package common contains shared constants and sentinel errors used across
// cotizador components.
package common

// TokenKey is the fixed name under which the bearer token is kept in
// durable local storage.
const TokenKey = "token"

// RequestIDHeaderName is the HTTP header used to carry a per-request
// correlation id on outbound requests.
const RequestIDHeaderName = "X-Request-Id"
