package retell

import (
	"strconv"
	"strings"
	"time"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/voice"
)

// Response engine types and the key each one stores its model under.
const (
	engineRetellLLM        = "retell-llm"
	engineCustomLLM        = "custom-llm"
	engineConversationFlow = "conversation-flow"
)

func engineModelKey(engineType string) string {
	switch engineType {
	case engineCustomLLM:
		return "llm_websocket_url"
	case engineConversationFlow:
		return "conversation_flow_id"
	default:
		return "llm_id"
	}
}

// ── Agent ──

func mapModel(engine map[string]any) *voice.ModelConfig {
	if engine == nil {
		return nil
	}
	switch t := dto.String(engine, "type"); t {
	case engineRetellLLM, engineCustomLLM, engineConversationFlow:
		return &voice.ModelConfig{Provider: t, Model: dto.String(engine, engineModelKey(t))}
	}
	return nil
}

func mapAgent(agent map[string]any) *voice.Agent {
	a := &voice.Agent{
		ID:           dto.String(agent, "agent_id"),
		Provider:     ProviderID,
		Name:         dto.String(agent, "agent_name"),
		Model:        mapModel(dto.Map(agent, "response_engine")),
		FirstMessage: dto.String(agent, "begin_message"),
		Raw:          agent,
	}
	if v := dto.String(agent, "voice_id"); v != "" {
		a.Voice = &voice.VoiceConfig{VoiceID: v}
	}
	return a
}

func createAgentRequest(params voice.CreateAgentParams) map[string]any {
	body := map[string]any{}
	if params.Name != nil {
		body["agent_name"] = *params.Name
	}
	if params.Voice != nil {
		body["voice_id"] = params.Voice.VoiceID
	}
	if params.FirstMessage != nil {
		body["begin_message"] = *params.FirstMessage
	}
	if params.MaxDurationSeconds != nil {
		body["max_call_duration_ms"] = *params.MaxDurationSeconds * 1000
	}
	if params.BackgroundSound != nil {
		body["ambient_sound"] = *params.BackgroundSound
	}
	if params.WebhookURL != nil {
		body["webhook_url"] = *params.WebhookURL
	}
	if params.WebhookTimeoutSeconds != nil {
		body["webhook_timeout_ms"] = *params.WebhookTimeoutSeconds * 1000
	}
	if params.VoicemailMessage != nil {
		body["voicemail_option"] = map[string]any{
			"action": map[string]any{
				"type": "static_text",
				"text": *params.VoicemailMessage,
			},
		}
	}
	if params.Model != nil {
		engine := map[string]any{"type": params.Model.Provider}
		engine[engineModelKey(params.Model.Provider)] = params.Model.Model
		body["response_engine"] = engine
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}

func updateAgentRequest(params voice.UpdateAgentParams) map[string]any {
	return createAgentRequest(voice.CreateAgentParams(params))
}

// ── Call ──

func mapCallStatus(status string) voice.CallStatus {
	switch status {
	case "registered":
		return voice.CallStatusQueued
	case "ongoing":
		return voice.CallStatusInProgress
	case "ended":
		return voice.CallStatusEnded
	case "error":
		return voice.CallStatusError
	default:
		// not_connected included: the call never reached a unified state.
		return voice.CallStatusUnknown
	}
}

func timestamp(rec map[string]any, key string) (float64, bool) {
	ms, ok := dto.Number(rec, key)
	if !ok || ms == 0 {
		return 0, false
	}
	return ms, true
}

func mapCall(call map[string]any) *voice.Call {
	c := &voice.Call{
		ID:           dto.String(call, "call_id"),
		Provider:     ProviderID,
		AgentID:      dto.String(call, "agent_id"),
		ToNumber:     dto.String(call, "to_number"),
		FromNumber:   dto.String(call, "from_number"),
		Status:       mapCallStatus(dto.String(call, "call_status")),
		Transcript:   dto.String(call, "transcript"),
		RecordingURL: dto.String(call, "recording_url"),
		Metadata:     dto.Map(call, "metadata"),
		Raw:          call,
	}

	startMs, hasStart := timestamp(call, "start_timestamp")
	endMs, hasEnd := timestamp(call, "end_timestamp")
	if hasStart {
		t := time.UnixMilli(int64(startMs)).UTC()
		c.StartedAt = &t
	}
	if hasEnd {
		t := time.UnixMilli(int64(endMs)).UTC()
		c.EndedAt = &t
	}
	switch {
	case hasStart && hasEnd:
		d := dto.RoundSeconds(endMs - startMs)
		c.Duration = &d
	default:
		if ms, ok := dto.Number(call, "duration_ms"); ok {
			d := dto.RoundSeconds(ms)
			c.Duration = &d
		}
	}
	return c
}

func createCallRequest(params voice.CreateCallParams) map[string]any {
	body := map[string]any{
		"to_number": params.ToNumber,
	}
	if params.FromNumber != "" {
		body["from_number"] = params.FromNumber
	}
	if params.AgentID != "" {
		body["agent_id"] = params.AgentID
	}
	if params.Metadata != nil {
		body["metadata"] = params.Metadata
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}

func updateCallRequest(params voice.UpdateCallParams) map[string]any {
	body := map[string]any{}
	if params.Metadata != nil {
		body["metadata"] = params.Metadata
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}

// unsupportedListCallParams names the unified call filters Retell's list
// endpoint cannot express.
func unsupportedListCallParams(params *voice.ListCallsParams) []string {
	var unsupported []string
	if params.PhoneNumberID != "" {
		unsupported = append(unsupported, "phoneNumberId")
	}
	if params.Sort != nil && params.Sort.Field != "" && params.Sort.Field != voice.SortFieldStartTime {
		unsupported = append(unsupported, "sort.field")
	}
	return unsupported
}

func timestampMs(value, label string) (int64, error) {
	t, ok := dto.ParseTimestamp(value)
	if !ok {
		return 0, voice.NewProviderError(ProviderID, "Invalid "+label+". Expected ISO timestamp.", nil)
	}
	return t.UnixMilli(), nil
}

// listCallsRequest builds the list-calls body. It fails before any
// request is made when a filter is unsupported or a bound is unparsable.
func listCallsRequest(params *voice.ListCallsParams) (map[string]any, error) {
	body := map[string]any{}
	if params == nil {
		return body, nil
	}
	if unsupported := unsupportedListCallParams(params); len(unsupported) > 0 {
		return nil, voice.NewProviderError(ProviderID,
			"Unsupported list params: "+strings.Join(unsupported, ", "), nil)
	}

	if params.Limit > 0 {
		body["limit"] = params.Limit
	}
	if params.Cursor != "" {
		body["pagination_key"] = params.Cursor
	}

	filter := map[string]any{}
	if params.AgentID != "" {
		filter["agent_id"] = []any{params.AgentID}
	}
	if params.CallStatus != "" {
		filter["call_status"] = []any{params.CallStatus}
	}
	if params.CallType != "" {
		filter["call_type"] = []any{params.CallType}
	}
	if params.Direction != "" {
		filter["direction"] = []any{string(params.Direction)}
	}
	if params.UserSentiment != "" {
		filter["user_sentiment"] = []any{params.UserSentiment}
	}
	if params.CallSuccessful != nil {
		filter["call_successful"] = []any{*params.CallSuccessful}
	}
	if params.StartTime != "" {
		ms, err := timestampMs(params.StartTime, "startTime")
		if err != nil {
			return nil, err
		}
		filter["start_timestamp"] = map[string]any{"lower_threshold": ms}
	}
	if params.EndTime != "" {
		ms, err := timestampMs(params.EndTime, "endTime")
		if err != nil {
			return nil, err
		}
		filter["end_timestamp"] = map[string]any{"upper_threshold": ms}
	}
	for k, v := range params.Metadata {
		filter["metadata."+k] = []any{v}
	}
	for k, v := range params.DynamicVariables {
		filter["dynamic_variables."+k] = []any{v}
	}
	if len(filter) > 0 {
		body["filter_criteria"] = filter
	}

	if params.Sort != nil {
		if params.Sort.Order == voice.SortOrderAsc {
			body["sort_order"] = "ascending"
		} else {
			body["sort_order"] = "descending"
		}
	}

	dto.Merge(body, params.ProviderOptions)
	return body, nil
}

// ── Phone Number ──

func createPhoneNumberRequest(params voice.CreatePhoneNumberParams) (map[string]any, error) {
	body := phoneNumberFields(params.Name, params.InboundAgentID, params.OutboundAgentID, params.WebhookURL)
	if params.AreaCode != nil {
		code, err := strconv.Atoi(strings.TrimSpace(*params.AreaCode))
		if err != nil {
			return nil, voice.NewProviderError(ProviderID, "Invalid areaCode: expected numeric string", nil)
		}
		body["area_code"] = code
	}
	dto.Merge(body, params.ProviderOptions)
	return body, nil
}

func updatePhoneNumberRequest(params voice.UpdatePhoneNumberParams) map[string]any {
	body := phoneNumberFields(params.Name, params.InboundAgentID, params.OutboundAgentID, params.WebhookURL)
	dto.Merge(body, params.ProviderOptions)
	return body
}

func phoneNumberFields(name, inbound, outbound, webhook *string) map[string]any {
	body := map[string]any{}
	if name != nil {
		body["nickname"] = *name
	}
	if inbound != nil {
		body["inbound_agent_id"] = *inbound
	}
	if outbound != nil {
		body["outbound_agent_id"] = *outbound
	}
	if webhook != nil {
		body["inbound_webhook_url"] = *webhook
	}
	return body
}

func mapPhoneNumber(pn map[string]any) *voice.PhoneNumber {
	number := dto.String(pn, "phone_number")
	inbound := dto.String(pn, "inbound_agent_id")
	p := &voice.PhoneNumber{
		ID:              number,
		Provider:        ProviderID,
		Number:          number,
		Name:            dto.String(pn, "nickname"),
		AgentID:         inbound,
		InboundAgentID:  inbound,
		OutboundAgentID: dto.String(pn, "outbound_agent_id"),
		WebhookURL:      dto.String(pn, "inbound_webhook_url"),
		Raw:             pn,
	}
	if code, ok := dto.Number(pn, "area_code"); ok {
		p.AreaCode = strconv.FormatFloat(code, 'f', -1, 64)
	} else if s := dto.String(pn, "area_code"); s != "" {
		p.AreaCode = s
	}
	return p
}

// ── Knowledge Base ──

func mapKnowledgeBaseSource(source map[string]any) voice.KnowledgeBaseSource {
	return voice.KnowledgeBaseSource{
		ID:   dto.String(source, "source_id"),
		Type: dto.String(source, "type"),
		URL:  dto.FirstString(source, "url", "file_url", "content_url"),
	}
}

func mapKnowledgeBase(kb map[string]any) *voice.KnowledgeBase {
	sources := dto.Maps(kb, "knowledge_base_sources")
	out := &voice.KnowledgeBase{
		ID:       dto.String(kb, "knowledge_base_id"),
		Provider: ProviderID,
		Name:     dto.String(kb, "knowledge_base_name"),
		Status:   dto.String(kb, "status"),
		Sources:  make([]voice.KnowledgeBaseSource, 0, len(sources)),
		Raw:      kb,
	}
	for _, s := range sources {
		out.Sources = append(out.Sources, mapKnowledgeBaseSource(s))
	}
	return out
}

func createKnowledgeBaseRequest(params voice.CreateKnowledgeBaseParams) map[string]any {
	body := map[string]any{
		"knowledge_base_name": params.Name,
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}
