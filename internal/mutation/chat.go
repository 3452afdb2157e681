package mutation

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hsiehdog/havenmind-front/internal/api"
	"github.com/hsiehdog/havenmind-front/internal/querycache"
)

// ChatThread keeps the cached conversation in sync with the backend and
// handles the optimistic send lifecycle: the user's turn appears in the
// cache immediately, flagged optimistic, and is confirmed or left flagged
// when the send settles.
type ChatThread struct {
	client *api.Client
	cache  *querycache.Cache
}

// NewChatThread wires a chat thread to its collaborators.
func NewChatThread(client *api.Client, cache *querycache.Cache) *ChatThread {
	return &ChatThread{client: client, cache: cache}
}

// Load fetches the reconstructed chat history into the cache.
func (t *ChatThread) Load(ctx context.Context) ([]api.ChatMessage, error) {
	messages, err := t.client.FetchChatHistory(ctx)
	if err != nil {
		// Last-known-good transcript stays cached.
		return nil, err
	}
	t.cache.Write(querycache.KeyChat, messages)
	return messages, nil
}

// Messages returns the cached conversation.
func (t *ChatThread) Messages() []api.ChatMessage {
	messages, _ := querycache.ReadSlice[api.ChatMessage](t.cache, querycache.KeyChat)
	return messages
}

// Send appends an optimistic user turn to the cached conversation, then
// submits the prompt. On success the optimistic flag is cleared and the
// assistant's reply — always fully formed, role defaulted to assistant —
// is appended and returned. On failure the user turn stays flagged so the
// UI can mark it unconfirmed, and the transport error is returned as-is.
func (t *ChatThread) Send(ctx context.Context, text string) (api.ChatMessage, error) {
	optimistic := api.ChatMessage{
		ID:           uuid.New().String(),
		Role:         api.RoleUser,
		Content:      text,
		CreatedAt:    time.Now(),
		IsOptimistic: true,
	}
	t.appendMessage(optimistic)

	reply, err := t.client.SendChatMessage(ctx, text)
	if err != nil {
		log.Debug("chat send failed", "id", optimistic.ID, "err", err)
		return api.ChatMessage{}, err
	}

	t.cache.Update(querycache.KeyChat, func(current any, ok bool) any {
		var messages []api.ChatMessage
		if ok {
			messages, _ = current.([]api.ChatMessage)
		}
		messages = copyMessages(messages)
		for i := range messages {
			if messages[i].ID == optimistic.ID {
				messages[i].IsOptimistic = false
			}
		}
		return append(messages, reply)
	})
	return reply, nil
}

func (t *ChatThread) appendMessage(message api.ChatMessage) {
	t.cache.Update(querycache.KeyChat, func(current any, ok bool) any {
		var messages []api.ChatMessage
		if ok {
			messages, _ = current.([]api.ChatMessage)
		}
		return append(copyMessages(messages), message)
	})
}

func copyMessages(messages []api.ChatMessage) []api.ChatMessage {
	out := make([]api.ChatMessage, len(messages))
	copy(out, messages)
	return out
}
