package voice

import "io"

// Every params struct with ProviderOptions merges those fields into the
// outgoing vendor request after all named fields, so they win on
// collision.

type CreateAgentParams struct {
	Name                  *string        `json:"name,omitempty"`
	Voice                 *VoiceConfig   `json:"voice,omitempty"`
	Model                 *ModelConfig   `json:"model,omitempty"`
	FirstMessage          *string        `json:"first_message,omitempty"`
	MaxDurationSeconds    *int           `json:"max_duration_seconds,omitempty"`
	BackgroundSound       *string        `json:"background_sound,omitempty"`
	VoicemailMessage      *string        `json:"voicemail_message,omitempty"`
	WebhookURL            *string        `json:"webhook_url,omitempty"`
	WebhookTimeoutSeconds *int           `json:"webhook_timeout_seconds,omitempty"`
	Metadata              map[string]any `json:"metadata,omitempty"`
	ProviderOptions       map[string]any `json:"provider_options,omitempty"`
}

type UpdateAgentParams struct {
	Name                  *string        `json:"name,omitempty"`
	Voice                 *VoiceConfig   `json:"voice,omitempty"`
	Model                 *ModelConfig   `json:"model,omitempty"`
	FirstMessage          *string        `json:"first_message,omitempty"`
	MaxDurationSeconds    *int           `json:"max_duration_seconds,omitempty"`
	BackgroundSound       *string        `json:"background_sound,omitempty"`
	VoicemailMessage      *string        `json:"voicemail_message,omitempty"`
	WebhookURL            *string        `json:"webhook_url,omitempty"`
	WebhookTimeoutSeconds *int           `json:"webhook_timeout_seconds,omitempty"`
	Metadata              map[string]any `json:"metadata,omitempty"`
	ProviderOptions       map[string]any `json:"provider_options,omitempty"`
}

type ListAgentsParams struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type CreateCallParams struct {
	AgentID         string         `json:"agent_id,omitempty"`
	ToNumber        string         `json:"to_number"`
	FromNumber      string         `json:"from_number,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type UpdateCallParams struct {
	Metadata        map[string]any `json:"metadata,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type CallDirection string

const (
	CallDirectionInbound  CallDirection = "inbound"
	CallDirectionOutbound CallDirection = "outbound"
)

const (
	SortFieldStartTime = "startTime"
	SortFieldCreatedAt = "createdAt"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

type CallSort struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// ListCallsParams holds the unified call filters. Vendors that cannot
// express a filter reject the whole request rather than ignore it.
type ListCallsParams struct {
	Limit            int            `json:"limit,omitempty"`
	Cursor           string         `json:"cursor,omitempty"`
	AgentID          string         `json:"agent_id,omitempty"`
	PhoneNumberID    string         `json:"phone_number_id,omitempty"`
	CallStatus       string         `json:"call_status,omitempty"`
	Direction        CallDirection  `json:"direction,omitempty"`
	CallType         string         `json:"call_type,omitempty"`
	UserSentiment    string         `json:"user_sentiment,omitempty"`
	CallSuccessful   *bool          `json:"call_successful,omitempty"`
	StartTime        string         `json:"start_time,omitempty"`
	EndTime          string         `json:"end_time,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	DynamicVariables map[string]any `json:"dynamic_variables,omitempty"`
	Sort             *CallSort      `json:"sort,omitempty"`
	ProviderOptions  map[string]any `json:"provider_options,omitempty"`
}

type ListPhoneNumbersParams struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type CreatePhoneNumberParams struct {
	Name            *string        `json:"name,omitempty"`
	InboundAgentID  *string        `json:"inbound_agent_id,omitempty"`
	OutboundAgentID *string        `json:"outbound_agent_id,omitempty"`
	WebhookURL      *string        `json:"webhook_url,omitempty"`
	AreaCode        *string        `json:"area_code,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type UpdatePhoneNumberParams struct {
	Name            *string        `json:"name,omitempty"`
	InboundAgentID  *string        `json:"inbound_agent_id,omitempty"`
	OutboundAgentID *string        `json:"outbound_agent_id,omitempty"`
	WebhookURL      *string        `json:"webhook_url,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type CreateToolParams struct {
	Type            string         `json:"type"`
	Name            string         `json:"name,omitempty"`
	Description     string         `json:"description,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type UpdateToolParams struct {
	Name            string         `json:"name,omitempty"`
	Description     string         `json:"description,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type ListToolsParams struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

// CreateFileParams uploads File under Name. The reader is consumed once.
type CreateFileParams struct {
	File            io.Reader      `json:"-"`
	Name            string         `json:"name,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type UpdateFileParams struct {
	Name            string         `json:"name,omitempty"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type ListFilesParams struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type CreateKnowledgeBaseParams struct {
	Name            string         `json:"name"`
	ProviderOptions map[string]any `json:"provider_options,omitempty"`
}

type ListKnowledgeBaseParams struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

// String returns a pointer to s, for optional params fields.
func String(s string) *string { return &s }

// Int returns a pointer to n, for optional params fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for optional params fields.
func Bool(b bool) *bool { return &b }
