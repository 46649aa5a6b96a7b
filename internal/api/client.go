// Package api implements the REST client for the quotation backend.
//
// Every outgoing request carries a correlation id and, when a token is
// available, an Authorization bearer header. Every received response is
// reported to subscribed observers before errors are mapped, which is how
// session expiry is detected globally rather than at each call site.
package api

import "context"

// TokenSource supplies the bearer token to attach to outgoing requests.
// An empty string means "no token": the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) string
}

// ResponseObserver is notified with the status code of every HTTP response
// the client receives, successes included. Observers must be fast and must
// not call back into the client.
type ResponseObserver interface {
	OnResponse(ctx context.Context, status int)
}
