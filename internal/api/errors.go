package api

import "errors"

// ErrNotConfigured signals that no API base URL is set. Resource accessors
// catch it internally and fall back to the mock dataset; it never reaches
// the UI layer.
var ErrNotConfigured = errors.New("API base URL is not configured")

// AdvisoryNotReady is the user-facing advisory for a document whose view
// link is not available yet. This is a soft condition, not an error: the
// server answered successfully but omitted the URL.
const AdvisoryNotReady = "Document is not available yet. Try again soon."

// genericTransportMessage stands in when an error response carries no body.
const genericTransportMessage = "Unexpected API error"

// TransportError is a non-success HTTP response. Message is the raw
// response body, surfaced verbatim to the caller so the UI can decide
// whether and how to show it.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Message == "" {
		return genericTransportMessage
	}
	return e.Message
}

// IsTransportError reports whether err is a TransportError and returns it.
func IsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
