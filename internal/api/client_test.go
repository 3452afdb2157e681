package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequest(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		c := NewClient("")
		_, err := request[[]UsageMetric](context.Background(), c, http.MethodGet, "/analytics/usage", nil)
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("got %v, want ErrNotConfigured", err)
		}
	})

	t.Run("error body surfaces verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("quota exceeded"))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.FetchUsageMetrics(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "quota exceeded" {
			t.Errorf("got message %q, want %q", err.Error(), "quota exceeded")
		}
		te, ok := IsTransportError(err)
		if !ok {
			t.Fatalf("expected TransportError, got %T", err)
		}
		if te.Status != http.StatusTooManyRequests {
			t.Errorf("got status %d, want 429", te.Status)
		}
	})

	t.Run("empty error body uses generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		c := NewClient(server.URL)
		_, err := c.FetchProjectSummaries(context.Background())
		if err == nil || err.Error() != "Unexpected API error" {
			t.Errorf("got %v, want generic message", err)
		}
	})

	t.Run("204 resolves with no payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPatch {
				t.Errorf("got method %s, want PATCH", r.Method)
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		c := NewClient(server.URL)
		if err := c.UpdateUserProfile(context.Background(), UpdateUserPayload{Name: "Ada"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sets JSON content type", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("got Content-Type %q", ct)
			}
			w.Write([]byte(`{"data":{"id":"r1","response":"ok","createdAt":"2025-08-01T10:00:00Z"}}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		reply, err := c.SendChatMessage(context.Background(), "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.Role != RoleAssistant {
			t.Errorf("role should default to assistant, got %q", reply.Role)
		}
		if reply.Content != "ok" {
			t.Errorf("got content %q, want %q", reply.Content, "ok")
		}
	})

	t.Run("chat history reconstructs sessions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/users/me/sessions" {
				t.Errorf("got path %q", r.URL.Path)
			}
			w.Write([]byte(`{"sessions":[{"id":"s1","prompt":"hi","response":"hello","createdAt":"2025-08-01T10:00:00Z"}]}`))
		}))
		defer server.Close()

		c := NewClient(server.URL)
		messages, err := c.FetchChatHistory(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(messages) != 2 {
			t.Fatalf("got %d messages, want 2", len(messages))
		}
		if messages[0].ID != "s1-prompt" || messages[1].ID != "s1-response" {
			t.Errorf("got IDs %q, %q", messages[0].ID, messages[1].ID)
		}
	})

	t.Run("trailing slash trimmed from base URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/activity" {
				t.Errorf("got path %q, want /activity", r.URL.Path)
			}
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		c := NewClient(server.URL + "/")
		if _, err := c.FetchActivityFeed(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
