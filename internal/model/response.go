package model

// Section is one titled block of a structured response.
type Section struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
	CTA     string   `json:"cta,omitempty"`
}

// LanguageBlock is the language-tagged section list. Exactly one block is
// produced per build.
type LanguageBlock struct {
	Language string    `json:"language"`
	Sections []Section `json:"sections"`
}

// QuickPick is a suggested follow-up value offered with certain replies.
type QuickPick struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Telemetry is the two-field contract every response template shares.
// IntentDetected carries the raw intent name, before display
// normalization.
type Telemetry struct {
	IntentDetected string   `json:"intent_detected"`
	ParamMissing   []string `json:"param_missing"`
}

// ReplyMetadata is the admin-audience metadata envelope.
type ReplyMetadata struct {
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Telemetry  Telemetry `json:"telemetry"`
}

// AdminChatResponse is the 200 envelope for the admin_dev audience.
type AdminChatResponse struct {
	Success                   bool            `json:"success"`
	Response                  []LanguageBlock `json:"response"`
	Metadata                  *ReplyMetadata  `json:"metadata,omitempty"`
	ConversationHistoryLength int             `json:"conversationHistoryLength"`
	Timestamp                 string          `json:"timestamp"`
}

// PublicChatResponse is the 200 envelope for the public_front audience.
// It never carries sections or telemetry.
type PublicChatResponse struct {
	Success    bool        `json:"success"`
	Response   string      `json:"response"`
	QuickPicks []QuickPick `json:"quickPicks,omitempty"`
	Timestamp  string      `json:"timestamp"`
}

// ValidationErrorResponse is the 400 envelope.
type ValidationErrorResponse struct {
	Success   bool         `json:"success"`
	Error     string       `json:"error"`
	Issues    []FieldIssue `json:"issues"`
	Timestamp string       `json:"timestamp"`
}

// InternalErrorResponse is the 500 envelope. Response carries a
// localized, user-safe apology; Details is machine-readable and only
// rendered for the admin audience.
type InternalErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}
