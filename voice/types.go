package voice

import "time"

type VoiceConfig struct {
	VoiceID  string `json:"voice_id"`
	Provider string `json:"provider,omitempty"`
}

// ModelConfig always carries Provider and Model together.
type ModelConfig struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	SystemPrompt string `json:"system_prompt,omitempty"`
}

type Agent struct {
	ID           string         `json:"id"`
	Provider     string         `json:"provider"`
	Name         string         `json:"name,omitempty"`
	Voice        *VoiceConfig   `json:"voice,omitempty"`
	Model        *ModelConfig   `json:"model,omitempty"`
	FirstMessage string         `json:"first_message,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Raw          map[string]any `json:"raw"`
}

type CallStatus string

const (
	CallStatusQueued     CallStatus = "queued"
	CallStatusRinging    CallStatus = "ringing"
	CallStatusInProgress CallStatus = "in-progress"
	CallStatusEnded      CallStatus = "ended"
	CallStatusError      CallStatus = "error"
	CallStatusUnknown    CallStatus = "unknown"
)

// ValidCallStatus reports whether s is one of the unified call states.
func ValidCallStatus(s string) bool {
	switch CallStatus(s) {
	case CallStatusQueued, CallStatusRinging, CallStatusInProgress,
		CallStatusEnded, CallStatusError, CallStatusUnknown:
		return true
	}
	return false
}

type Call struct {
	ID         string     `json:"id"`
	Provider   string     `json:"provider"`
	AgentID    string     `json:"agent_id,omitempty"`
	ToNumber   string     `json:"to_number,omitempty"`
	FromNumber string     `json:"from_number,omitempty"`
	Status     CallStatus `json:"status"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	// Duration is in whole seconds.
	Duration     *int           `json:"duration,omitempty"`
	Transcript   string         `json:"transcript,omitempty"`
	RecordingURL string         `json:"recording_url,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Raw          map[string]any `json:"raw"`
}

// PhoneNumber.ID is the literal number for vendors without a separate id.
type PhoneNumber struct {
	ID              string         `json:"id"`
	Provider        string         `json:"provider"`
	Number          string         `json:"number,omitempty"`
	Name            string         `json:"name,omitempty"`
	AgentID         string         `json:"agent_id,omitempty"`
	InboundAgentID  string         `json:"inbound_agent_id,omitempty"`
	OutboundAgentID string         `json:"outbound_agent_id,omitempty"`
	WebhookURL      string         `json:"webhook_url,omitempty"`
	AreaCode        string         `json:"area_code,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	Raw             map[string]any `json:"raw"`
}

type Tool struct {
	ID          string         `json:"id"`
	Provider    string         `json:"provider"`
	Type        string         `json:"type"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Raw         map[string]any `json:"raw"`
}

type FileStatus string

const (
	FileStatusProcessing FileStatus = "processing"
	FileStatusDone       FileStatus = "done"
	FileStatusFailed     FileStatus = "failed"
	FileStatusUnknown    FileStatus = "unknown"
)

type VoiceFile struct {
	ID       string         `json:"id"`
	Provider string         `json:"provider"`
	Name     string         `json:"name,omitempty"`
	Status   FileStatus     `json:"status"`
	Bytes    *int64         `json:"bytes,omitempty"`
	URL      string         `json:"url,omitempty"`
	MimeType string         `json:"mime_type,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Raw      map[string]any `json:"raw"`
}

type KnowledgeBaseSource struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// KnowledgeBase.Sources is empty, never nil, when the vendor omits it.
type KnowledgeBase struct {
	ID       string                `json:"id"`
	Provider string                `json:"provider"`
	Name     string                `json:"name"`
	Status   string                `json:"status"`
	Sources  []KnowledgeBaseSource `json:"sources"`
	Raw      map[string]any        `json:"raw"`
}

// Page is a single page of results. HasMore is always false: vendor
// cursors are not chained through this layer, so every list call
// returns one page.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// SinglePage wraps items as the only page.
func SinglePage[T any](items []T) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, HasMore: false}
}
