package api

import (
	"context"
	"net/http"
)

// Resource accessors: one method per logical read or write, hiding the
// mock/live choice from the caller. In mock mode results come from the
// shared dataset after the resource's artificial delay; in live mode they
// come from a single network call.

// FetchUsageMetrics returns the dashboard usage statistics.
func (c *Client) FetchUsageMetrics(ctx context.Context) ([]UsageMetric, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelayUsage); err != nil {
			return nil, err
		}
		return copyOf(mockDataset.usage), nil
	}
	return request[[]UsageMetric](ctx, c, http.MethodGet, "/analytics/usage", nil)
}

// FetchProjectSummaries returns the managed properties.
func (c *Client) FetchProjectSummaries(ctx context.Context) ([]ProjectSummary, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelayProjects); err != nil {
			return nil, err
		}
		return copyOf(mockDataset.projects), nil
	}
	return request[[]ProjectSummary](ctx, c, http.MethodGet, "/projects", nil)
}

// FetchActivityFeed returns the recent-activity entries.
func (c *Client) FetchActivityFeed(ctx context.Context) ([]ActivityItem, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelayActivity); err != nil {
			return nil, err
		}
		return copyOf(mockDataset.activity), nil
	}
	return request[[]ActivityItem](ctx, c, http.MethodGet, "/activity", nil)
}

type sessionListResponse struct {
	Sessions []ChatSession `json:"sessions"`
}

// FetchChatHistory returns the full conversation, reconstructed from the
// backend's session records into a flat ordered message sequence.
func (c *Client) FetchChatHistory(ctx context.Context) ([]ChatMessage, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelayChat); err != nil {
			return nil, err
		}
		return copyOf(mockDataset.chat), nil
	}
	resp, err := request[sessionListResponse](ctx, c, http.MethodGet, "/users/me/sessions", nil)
	if err != nil {
		return nil, err
	}
	return ReconstructMessages(resp.Sessions), nil
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Data ChatSession `json:"data"`
}

// SendChatMessage submits a prompt and returns the assistant's reply. The
// reply is always fully formed: content mapped from the wire record and
// role defaulted to assistant when the server omits it. Rendering an
// optimistic user turn while this call is in flight is the caller's job.
func (c *Client) SendChatMessage(ctx context.Context, prompt string) (ChatMessage, error) {
	if c.mock {
		if err := c.sleep(ctx, mockDelaySend); err != nil {
			return ChatMessage{}, err
		}
		return mockAssistantMessage(), nil
	}
	resp, err := request[generateResponse](ctx, c, http.MethodPost, "/ai/generate", generateRequest{Prompt: prompt})
	if err != nil {
		return ChatMessage{}, err
	}
	return mapToChatMessage(resp.Data, RoleAssistant), nil
}

// UpdateUserProfile patches the current user's profile. The backend
// answers 204; success carries no payload.
func (c *Client) UpdateUserProfile(ctx context.Context, payload UpdateUserPayload) error {
	if c.mock {
		return c.sleep(ctx, mockDelayAccount)
	}
	_, err := request[struct{}](ctx, c, http.MethodPatch, "/users/me", payload)
	return err
}

// ChangeUserPassword rotates the current user's password.
func (c *Client) ChangeUserPassword(ctx context.Context, payload ChangePasswordPayload) error {
	if c.mock {
		return c.sleep(ctx, mockDelayAccount)
	}
	_, err := request[struct{}](ctx, c, http.MethodPost, "/users/me/change-password", payload)
	return err
}
