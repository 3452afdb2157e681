package api

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ReconstructMessages flattens the backend's session records (one per
// prompt/response exchange) into the ordered message sequence the chat UI
// renders. It is a pure function: given the same sessions it produces
// byte-identical identifiers and ordering, so a re-fetch never reshuffles
// the transcript.
//
// Sessions sort ascending by creation time; a missing or unparseable
// timestamp sorts as epoch 0, i.e. earliest. Within a session the prompt
// precedes the response. A session with an empty prompt contributes only
// the assistant turn — no placeholder user message is invented. The
// assistant turn is always emitted, even with empty content, so the
// session-to-turn cardinality stays visible when debugging.
func ReconstructMessages(sessions []ChatSession) []ChatMessage {
	sorted := copyOf(sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sessionTime(sorted[i]).Before(sessionTime(sorted[j]))
	})

	messages := make([]ChatMessage, 0, 2*len(sorted))
	for _, session := range sorted {
		id := session.ID
		if id == "" {
			id = uuid.New().String()
		}
		if session.Prompt != "" {
			messages = append(messages, mapToChatMessage(ChatSession{
				ID:        id + "-prompt",
				Role:      RoleUser,
				Text:      session.Prompt,
				CreatedAt: session.CreatedAt,
			}, RoleUser))
		}
		response := session.Response
		if response == "" {
			response = session.Text
		}
		messages = append(messages, mapToChatMessage(ChatSession{
			ID:        id + "-response",
			Text:      response,
			CreatedAt: session.CreatedAt,
		}, RoleAssistant))
	}
	return messages
}

// mapToChatMessage turns one wire record into a display message. Content
// falls back through text, response, prompt; the role defaults to
// fallbackRole when the server omits it; a missing timestamp defaults to
// now.
func mapToChatMessage(payload ChatSession, fallbackRole ChatRole) ChatMessage {
	content := payload.Text
	if content == "" {
		content = payload.Response
	}
	if content == "" {
		content = payload.Prompt
	}

	id := payload.ID
	if id == "" {
		id = uuid.New().String()
	}
	role := payload.Role
	if role == "" {
		role = fallbackRole
	}
	createdAt := time.Now()
	if ts, ok := parseSessionTime(payload.CreatedAt); ok {
		createdAt = ts
	}

	return ChatMessage{
		ID:        id,
		Role:      role,
		Content:   content,
		CreatedAt: createdAt,
	}
}

func sessionTime(s ChatSession) time.Time {
	if ts, ok := parseSessionTime(s.CreatedAt); ok {
		return ts
	}
	return time.Unix(0, 0)
}

func parseSessionTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
