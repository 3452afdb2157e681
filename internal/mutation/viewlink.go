package mutation

import (
	"context"
	"sync"

	"github.com/hsiehdog/havenmind-front/internal/api"
)

// ViewLinkState is the transient per-document state of a view-link
// request. Advisory is set when the server answered successfully but the
// document has no URL yet; Err carries a transport failure.
type ViewLinkState struct {
	Pending  bool
	Advisory string
	Err      string
}

// ViewLinkTracker requests short-lived view links, tracking in-flight
// state per document identifier. Keying by identifier means concurrent
// requests for two different documents never clobber each other's
// pending or error state. Two concurrent requests for the same identifier
// share one slot and the later one wins its transient state; the earlier
// request's result is still returned to its own caller.
type ViewLinkTracker struct {
	client *api.Client

	mu     sync.Mutex
	states map[string]ViewLinkState
}

// NewViewLinkTracker wires a tracker to the API client.
func NewViewLinkTracker(client *api.Client) *ViewLinkTracker {
	return &ViewLinkTracker{
		client: client,
		states: make(map[string]ViewLinkState),
	}
}

// Open fetches a view link for documentID. A successful response with an
// empty URL resolves without error and records the not-ready advisory in
// the document's slot; the returned url is empty in that case.
func (t *ViewLinkTracker) Open(ctx context.Context, documentID string) (string, error) {
	t.setState(documentID, ViewLinkState{Pending: true})

	url, err := t.client.FetchDocumentViewURL(ctx, documentID)
	if err != nil {
		t.setState(documentID, ViewLinkState{Err: err.Error()})
		return "", err
	}
	if url == "" {
		t.setState(documentID, ViewLinkState{Advisory: api.AdvisoryNotReady})
		return "", nil
	}

	t.setState(documentID, ViewLinkState{})
	return url, nil
}

// State returns the current slot for documentID.
func (t *ViewLinkTracker) State(documentID string) ViewLinkState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[documentID]
}

func (t *ViewLinkTracker) setState(documentID string, state ViewLinkState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states[documentID] = state
}
