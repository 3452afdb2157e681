package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
)

// DocumentUpload describes one file handed to UploadDocument. Size is
// advisory (the mock provider echoes it back); the body is streamed.
type DocumentUpload struct {
	Filename string
	MimeType string
	Size     int64
	Body     io.Reader
}

// FetchDocuments returns the user's Home Journal documents.
func (c *Client) FetchDocuments(ctx context.Context) ([]UserDocument, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelayDocuments); err != nil {
			return nil, err
		}
		return copyOf(mockDataset.documents), nil
	}
	return request[[]UserDocument](ctx, c, http.MethodGet, "/documents", nil)
}

// UploadDocument submits one file as a multipart POST and returns the
// server's document record. The server assigns identity and initial
// status; nothing is written anywhere before it confirms.
func (c *Client) UploadDocument(ctx context.Context, upload DocumentUpload) (UserDocument, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelayUpload); err != nil {
			return UserDocument{}, err
		}
		return mockUploadedDocument(upload), nil
	}
	if c.baseURL == "" {
		return UserDocument{}, ErrNotConfigured
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, upload.Filename))
	if upload.MimeType != "" {
		header.Set("Content-Type", upload.MimeType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return UserDocument{}, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, upload.Body); err != nil {
		return UserDocument{}, fmt.Errorf("reading upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return UserDocument{}, fmt.Errorf("finalizing upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload", &buf)
	if err != nil {
		return UserDocument{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return UserDocument{}, err
	}
	defer resp.Body.Close()

	log.Debug("api upload", "path", "/documents/upload", "status", resp.StatusCode, "file", upload.Filename)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(resp.Body)
		return UserDocument{}, &TransportError{Status: resp.StatusCode, Message: strings.TrimSpace(string(text))}
	}

	var doc UserDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return UserDocument{}, fmt.Errorf("decoding upload response: %w", err)
	}
	return doc, nil
}

type viewLinkResponse struct {
	URL string `json:"url,omitempty"`
}

// FetchDocumentViewURL asks for a short-lived view link for one document.
// An empty URL in a successful response means the document is not ready
// yet; callers treat that as an advisory, not an error.
func (c *Client) FetchDocumentViewURL(ctx context.Context, documentID string) (string, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelayViewLink); err != nil {
			return "", err
		}
		return "https://docs.havenmind.dev/mock/" + url.PathEscape(documentID), nil
	}
	resp, err := request[viewLinkResponse](ctx, c, http.MethodGet, "/documents/"+url.PathEscape(documentID)+"/view", nil)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}
