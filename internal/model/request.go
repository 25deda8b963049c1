// Package model defines the wire types for the assistant router.
package model

// Role represents the role of a history entry author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Audience selects the response shape.
type Audience string

const (
	// AudiencePublic is the end-customer surface: plain text only.
	AudiencePublic Audience = "public_front"
	// AudienceAdmin is the developer/operator surface: full sections
	// plus telemetry.
	AudienceAdmin Audience = "admin_dev"
)

// HistoryEntry is one turn of conversation history.
type HistoryEntry struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the inbound chat envelope.
type ChatRequest struct {
	Message             string            `json:"message"`
	PersonalID          string            `json:"personalId,omitempty"`
	ConversationHistory []HistoryEntry    `json:"conversationHistory,omitempty"`
	SelectedModel       string            `json:"selectedModel,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
	Audience            Audience          `json:"audience,omitempty"`
}

// FieldIssue describes one validation problem on the inbound envelope.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MaxHistoryEntries is the number of most recent valid history entries
// kept before classification.
const MaxHistoryEntries = 20

// AnonymousUser is the user id applied when personalId is absent.
const AnonymousUser = "anonymous"
