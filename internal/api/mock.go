package api

import (
	"time"

	"github.com/google/uuid"
)

// Artificial latency per mocked resource. Each resource gets a different
// fixed value so interleaved loading states look realistic in the UI.
const (
	mockDelayUsage     = 300 * time.Millisecond
	mockDelayProjects  = 320 * time.Millisecond
	mockDelayActivity  = 280 * time.Millisecond
	mockDelayChat      = 200 * time.Millisecond
	mockDelaySend      = 600 * time.Millisecond
	mockDelayDocuments = 240 * time.Millisecond
	mockDelayUpload    = 500 * time.Millisecond
	mockDelayViewLink  = 180 * time.Millisecond
	mockDelayAccount   = 300 * time.Millisecond
)

const mockAssistantReply = "Here's a mocked HavenMind response. In production this is where we would summarize the task, recommend trusted pros, or log the action to the Home Journal."

// mockDataset is the process-wide hand-authored dataset served when no
// base URL is configured. It is shared and immutable; accessors hand out
// copies so callers cannot mutate it.
var mockDataset = struct {
	usage     []UsageMetric
	projects  []ProjectSummary
	activity  []ActivityItem
	chat      []ChatMessage
	documents []UserDocument
}{
	usage: []UsageMetric{
		{ID: "tasks", Label: "Upcoming tasks", Value: "32", Delta: 18},
		{ID: "overdue", Label: "Overdue items", Value: "3", Delta: -25},
		{ID: "documents", Label: "Documents indexed", Value: "214", Delta: 9},
		{ID: "health", Label: "Avg. Home Health Score", Value: "92", Delta: 4},
	},
	projects: []ProjectSummary{
		{
			ID:        "maple",
			Name:      "Maple Street Craftsman",
			Status:    ProjectOnline,
			UpdatedAt: "HVAC tune-up · 2h ago",
			Owner:     "Henderson family",
		},
		{
			ID:        "lakeside",
			Name:      "Lakeside Duplex",
			Status:    ProjectDegraded,
			UpdatedAt: "Roof leak check · 8m ago",
			Owner:     "Lakeside PM",
		},
		{
			ID:        "loft",
			Name:      "Downtown Loft",
			Status:    ProjectPaused,
			UpdatedAt: "Renovation hold · 45m ago",
			Owner:     "Northwind Realty",
		},
	},
	activity: []ActivityItem{
		{
			ID:          "maint-1",
			Title:       "Water heater flushed",
			Description: "Receipt added to the Home Journal for Maple Street",
			Timestamp:   "Today · 10:42 AM",
			Category:    ActivityMaintenance,
		},
		{
			ID:          "alert-1",
			Title:       "HVAC filter overdue",
			Description: "Lakeside Duplex is 12 days past the recommended change",
			Timestamp:   "Today · 9:17 AM",
			Category:    ActivityAlert,
		},
		{
			ID:          "journal-1",
			Title:       "Inspection uploaded",
			Description: "New roof report attached to Downtown Loft",
			Timestamp:   "Yesterday · 6:03 PM",
			Category:    ActivityJournal,
		},
	},
	chat: []ChatMessage{
		{
			ID:        "intro-1",
			Role:      RoleAssistant,
			Content:   "Hi! I'm HavenMind. Ask me what to prep for this season, which warranties are expiring, or how your Home Health Score is trending.",
			CreatedAt: time.Now(),
		},
	},
	documents: []UserDocument{
		{
			ID:           "doc-roof-report",
			OriginalName: "roof-inspection-2025.pdf",
			Size:         482_113,
			MimeType:     "application/pdf",
			CreatedAt:    time.Now().Add(-36 * time.Hour),
			Status:       DocumentComplete,
		},
		{
			ID:           "doc-hvac-manual",
			OriginalName: "hvac-owner-manual.pdf",
			Size:         2_381_554,
			MimeType:     "application/pdf",
			CreatedAt:    time.Now().Add(-6 * 24 * time.Hour),
			Status:       DocumentComplete,
		},
		{
			ID:           "doc-receipt",
			OriginalName: "water-heater-receipt.jpg",
			Size:         148_220,
			MimeType:     "image/jpeg",
			CreatedAt:    time.Now().Add(-45 * time.Minute),
			Status:       DocumentProcessing,
		},
	},
}

// mockAssistantMessage mints a fresh assistant reply. New identifier and
// current timestamp on every call, so repeated sends in tests stay
// distinguishable.
func mockAssistantMessage() ChatMessage {
	return ChatMessage{
		ID:        uuid.New().String(),
		Role:      RoleAssistant,
		Content:   mockAssistantReply,
		CreatedAt: time.Now(),
	}
}

// mockUploadedDocument mints a document record for a mock upload.
func mockUploadedDocument(upload DocumentUpload) UserDocument {
	return UserDocument{
		ID:           uuid.New().String(),
		OriginalName: upload.Filename,
		Size:         upload.Size,
		MimeType:     upload.MimeType,
		CreatedAt:    time.Now(),
		Status:       DocumentUploaded,
	}
}

func copyOf[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}
