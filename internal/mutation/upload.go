// Package mutation orchestrates optimistic, user-initiated writes and
// reconciles their results into the shared query cache.
package mutation

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/hsiehdog/havenmind-front/internal/api"
	"github.com/hsiehdog/havenmind-front/internal/querycache"
)

// UploadController drives the document upload lifecycle: issue the call,
// merge the confirmed record into the cached document list, and always
// invalidate the list so the next read reconciles with the server.
//
// Nothing is written speculatively before the call settles — the server
// assigns document identity, so there is no optimistic entry to roll back
// on failure.
type UploadController struct {
	client *api.Client
	cache  *querycache.Cache
}

// NewUploadController wires an upload controller to its collaborators.
func NewUploadController(client *api.Client, cache *querycache.Cache) *UploadController {
	return &UploadController{client: client, cache: cache}
}

// Upload submits one file. On success the returned document is prepended
// to the cached list, replacing any prior entry with the same identifier.
// Success or failure, the documents query is invalidated afterwards.
// Failures surface the transport error verbatim; there is no retry.
func (u *UploadController) Upload(ctx context.Context, upload api.DocumentUpload) (api.UserDocument, error) {
	doc, err := u.client.UploadDocument(ctx, upload)
	if err != nil {
		u.cache.Invalidate(querycache.KeyDocuments)
		return api.UserDocument{}, err
	}

	u.cache.Update(querycache.KeyDocuments, func(current any, ok bool) any {
		var prev []api.UserDocument
		if ok {
			prev, _ = current.([]api.UserDocument)
		}
		return mergeDocument(prev, doc)
	})
	u.cache.Invalidate(querycache.KeyDocuments)

	log.Debug("document uploaded", "id", doc.ID, "name", doc.OriginalName, "status", doc.Status)
	return doc, nil
}

// mergeDocument prepends doc, dropping any prior entry sharing its ID so a
// resubmission replaces rather than duplicates. A cached entry whose
// status is further along the pipeline keeps its status: the client never
// walks a document back to an earlier state.
func mergeDocument(prev []api.UserDocument, doc api.UserDocument) []api.UserDocument {
	merged := make([]api.UserDocument, 0, len(prev)+1)
	for _, existing := range prev {
		if existing.ID == doc.ID {
			if existing.Status.Rank() > doc.Status.Rank() {
				doc.Status = existing.Status
			}
			continue
		}
		merged = append(merged, existing)
	}
	return append([]api.UserDocument{doc}, merged...)
}
