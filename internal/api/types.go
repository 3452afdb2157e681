package api

import "time"

// ProjectStatus reports the health of a managed property.
type ProjectStatus string

const (
	ProjectOnline   ProjectStatus = "online"
	ProjectDegraded ProjectStatus = "degraded"
	ProjectPaused   ProjectStatus = "paused"
)

// ActivityCategory classifies an activity feed entry.
type ActivityCategory string

const (
	ActivityMaintenance ActivityCategory = "maintenance"
	ActivityJournal     ActivityCategory = "journal"
	ActivityAlert       ActivityCategory = "alert"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleSystem    ChatRole = "system"
)

// UsageMetric is one dashboard statistic. Snapshots are immutable and
// replaced wholesale on each fetch.
type UsageMetric struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Value  string  `json:"value"`
	Delta  float64 `json:"delta"`
	Helper string  `json:"helper,omitempty"`
}

// ProjectSummary is one managed property as shown on the dashboard.
type ProjectSummary struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	UpdatedAt string        `json:"updatedAt"`
	Owner     string        `json:"owner"`
}

// ActivityItem is one entry in the recent-activity feed.
type ActivityItem struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Timestamp   string           `json:"timestamp"`
	Category    ActivityCategory `json:"category"`
}

// ChatMessage is the UI's unit of conversation display. IsOptimistic marks
// a client-predicted entry not yet confirmed by the server.
type ChatMessage struct {
	ID           string    `json:"id"`
	Role         ChatRole  `json:"role"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	IsOptimistic bool      `json:"isOptimistic,omitempty"`
}

// ChatSession is the server's storage unit for one prompt/response
// exchange. It is a wire shape only and never reaches the UI; the
// reconstruction step expands it into individual ChatMessages.
type ChatSession struct {
	ID        string   `json:"id,omitempty"`
	Role      ChatRole `json:"role,omitempty"`
	Text      string   `json:"text,omitempty"`
	Prompt    string   `json:"prompt,omitempty"`
	Response  string   `json:"response,omitempty"`
	SessionID string   `json:"sessionId,omitempty"`
	Model     string   `json:"model,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// DocumentStatus tracks a document through server-side processing.
// It only moves forward; the client never regresses a settled status.
type DocumentStatus string

const (
	DocumentUploaded   DocumentStatus = "UPLOADED"
	DocumentProcessing DocumentStatus = "PROCESSING"
	DocumentComplete   DocumentStatus = "COMPLETE"
	DocumentFailed     DocumentStatus = "FAILED"
)

// Rank orders statuses along the processing pipeline. Terminal states
// (COMPLETE, FAILED) rank highest so a merge never walks them back.
func (s DocumentStatus) Rank() int {
	switch s {
	case DocumentUploaded:
		return 1
	case DocumentProcessing:
		return 2
	case DocumentComplete, DocumentFailed:
		return 3
	default:
		return 0
	}
}

// UserDocument is one uploaded Home Journal document.
type UserDocument struct {
	ID           string         `json:"id"`
	OriginalName string         `json:"originalName"`
	Size         int64          `json:"size"`
	MimeType     string         `json:"mimeType"`
	CreatedAt    time.Time      `json:"createdAt"`
	Status       DocumentStatus `json:"status"`
}

// UpdateUserPayload carries an account profile update. Empty fields are
// omitted from the wire payload.
type UpdateUserPayload struct {
	Name string `json:"name,omitempty"`
}

// ChangePasswordPayload carries a password rotation request.
type ChangePasswordPayload struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
