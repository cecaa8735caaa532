package vapi

import (
	"strings"
	"time"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/voice"
)

const defaultVoiceProvider = "11labs"

// ── Assistant ──

func mapVoice(v map[string]any) *voice.VoiceConfig {
	if v == nil {
		return nil
	}
	return &voice.VoiceConfig{
		VoiceID:  dto.FirstString(v, "voiceId", "voice"),
		Provider: dto.String(v, "provider"),
	}
}

func mapModel(m map[string]any) *voice.ModelConfig {
	if m == nil {
		return nil
	}
	out := &voice.ModelConfig{
		Provider: dto.String(m, "provider"),
		Model:    dto.String(m, "model"),
	}
	if messages := dto.Maps(m, "messages"); len(messages) > 0 {
		out.SystemPrompt = dto.String(messages[0], "content")
	}
	return out
}

func mapAssistant(assistant map[string]any) *voice.Agent {
	return &voice.Agent{
		ID:           dto.String(assistant, "id"),
		Provider:     ProviderID,
		Name:         dto.String(assistant, "name"),
		Voice:        mapVoice(dto.Map(assistant, "voice")),
		Model:        mapModel(dto.Map(assistant, "model")),
		FirstMessage: dto.String(assistant, "firstMessage"),
		Metadata:     dto.Map(assistant, "metadata"),
		Raw:          assistant,
	}
}

// assistantRequest builds a create or update body. A "server" entry in
// ProviderOptions is merged into the built server object rather than
// replacing it.
func assistantRequest(params voice.CreateAgentParams) map[string]any {
	body := map[string]any{}
	if params.Name != nil {
		body["name"] = *params.Name
	}
	if params.FirstMessage != nil {
		body["firstMessage"] = *params.FirstMessage
	}
	if params.MaxDurationSeconds != nil {
		body["maxDurationSeconds"] = *params.MaxDurationSeconds
	}
	if params.BackgroundSound != nil {
		body["backgroundSound"] = *params.BackgroundSound
	}
	if params.VoicemailMessage != nil {
		body["voicemailMessage"] = *params.VoicemailMessage
	}

	server := map[string]any{}
	if params.WebhookURL != nil {
		server["url"] = *params.WebhookURL
	}
	if params.WebhookTimeoutSeconds != nil {
		server["timeoutSeconds"] = *params.WebhookTimeoutSeconds
	}
	if len(server) > 0 {
		body["server"] = server
	}

	if params.Metadata != nil {
		body["metadata"] = params.Metadata
	}
	if params.Voice != nil {
		provider := params.Voice.Provider
		if provider == "" {
			provider = defaultVoiceProvider
		}
		body["voice"] = map[string]any{
			"voiceId":  params.Voice.VoiceID,
			"provider": provider,
		}
	}
	if params.Model != nil {
		model := map[string]any{
			"provider": params.Model.Provider,
			"model":    params.Model.Model,
		}
		if params.Model.SystemPrompt != "" {
			model["messages"] = []any{
				map[string]any{"role": "system", "content": params.Model.SystemPrompt},
			}
		}
		body["model"] = model
	}

	for k, v := range params.ProviderOptions {
		if k != "server" {
			body[k] = v
		}
	}
	if v, present := params.ProviderOptions["server"]; present {
		if override, ok := dto.Object(v); ok {
			merged := dto.Clone(dto.Map(body, "server"))
			dto.Merge(merged, override)
			body["server"] = merged
		} else {
			body["server"] = v
		}
	}
	return body
}

func createAssistantRequest(params voice.CreateAgentParams) map[string]any {
	return assistantRequest(params)
}

func updateAssistantRequest(params voice.UpdateAgentParams) map[string]any {
	return assistantRequest(voice.CreateAgentParams(params))
}

// ── Call ──

func mapCallStatus(status string) voice.CallStatus {
	switch status {
	case "queued":
		return voice.CallStatusQueued
	case "ringing":
		return voice.CallStatusRinging
	case "in-progress", "forwarding":
		return voice.CallStatusInProgress
	case "ended":
		return voice.CallStatusEnded
	default:
		return voice.CallStatusUnknown
	}
}

func parseTime(rec map[string]any, key string) *time.Time {
	s := dto.String(rec, key)
	if s == "" {
		return nil
	}
	t, ok := dto.ParseTimestamp(s)
	if !ok {
		return nil
	}
	return &t
}

func mapCall(call map[string]any) *voice.Call {
	artifact := dto.Map(call, "artifact")
	c := &voice.Call{
		ID:           dto.String(call, "id"),
		Provider:     ProviderID,
		AgentID:      dto.String(call, "assistantId"),
		ToNumber:     dto.String(dto.Map(call, "customer"), "number"),
		FromNumber:   dto.String(dto.Map(call, "phoneNumber"), "number"),
		Status:       mapCallStatus(dto.String(call, "status")),
		StartedAt:    parseTime(call, "startedAt"),
		EndedAt:      parseTime(call, "endedAt"),
		Transcript:   dto.String(artifact, "transcript"),
		RecordingURL: dto.String(artifact, "recordingUrl"),
		Raw:          call,
	}
	if c.StartedAt != nil && c.EndedAt != nil {
		d := dto.RoundSeconds(float64(c.EndedAt.Sub(*c.StartedAt).Milliseconds()))
		c.Duration = &d
	}
	return c
}

func createCallRequest(params voice.CreateCallParams) map[string]any {
	body := map[string]any{}
	if params.AgentID != "" {
		body["assistantId"] = params.AgentID
	}
	if params.ToNumber != "" {
		body["customer"] = map[string]any{"number": params.ToNumber}
	}
	if params.FromNumber != "" {
		body["phoneNumberId"] = params.FromNumber
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}

// updateCallRequest carries only ProviderOptions; Vapi exposes no
// editable unified call fields.
func updateCallRequest(params voice.UpdateCallParams) map[string]any {
	body := map[string]any{}
	dto.Merge(body, params.ProviderOptions)
	return body
}

// unsupportedListCallParams names the unified call filters the Vapi
// list endpoint cannot express. Order is fixed.
func unsupportedListCallParams(params *voice.ListCallsParams) []string {
	var unsupported []string
	if params.Cursor != "" {
		unsupported = append(unsupported, "cursor")
	}
	if params.CallStatus != "" {
		unsupported = append(unsupported, "callStatus")
	}
	if params.Direction != "" {
		unsupported = append(unsupported, "direction")
	}
	if params.CallType != "" {
		unsupported = append(unsupported, "callType")
	}
	if params.UserSentiment != "" {
		unsupported = append(unsupported, "userSentiment")
	}
	if params.CallSuccessful != nil {
		unsupported = append(unsupported, "callSuccessful")
	}
	if len(params.Metadata) > 0 {
		unsupported = append(unsupported, "metadata")
	}
	if len(params.DynamicVariables) > 0 {
		unsupported = append(unsupported, "dynamicVariables")
	}
	if params.Sort != nil {
		unsupported = append(unsupported, "sort")
	}
	return unsupported
}

func checkTimestamp(value, label string) error {
	if _, ok := dto.ParseTimestamp(value); !ok {
		return voice.NewProviderError(ProviderID, "Invalid "+label+". Expected ISO timestamp.", nil)
	}
	return nil
}

func listCallsQuery(params *voice.ListCallsParams) (map[string]any, error) {
	query := map[string]any{}
	if params == nil {
		return query, nil
	}
	if unsupported := unsupportedListCallParams(params); len(unsupported) > 0 {
		return nil, voice.NewProviderError(ProviderID,
			"Unsupported list params: "+strings.Join(unsupported, ", "), nil)
	}
	if params.Limit > 0 {
		query["limit"] = params.Limit
	}
	if params.AgentID != "" {
		query["assistantId"] = params.AgentID
	}
	if params.PhoneNumberID != "" {
		query["phoneNumberId"] = params.PhoneNumberID
	}
	if params.StartTime != "" {
		if err := checkTimestamp(params.StartTime, "startTime"); err != nil {
			return nil, err
		}
		query["createdAtGt"] = params.StartTime
	}
	if params.EndTime != "" {
		if err := checkTimestamp(params.EndTime, "endTime"); err != nil {
			return nil, err
		}
		query["createdAtLt"] = params.EndTime
	}
	dto.Merge(query, params.ProviderOptions)
	return query, nil
}

func limitQuery(limit int) map[string]any {
	if limit <= 0 {
		return nil
	}
	return map[string]any{"limit": limit}
}

// ── Phone Number ──

func mapPhoneNumber(pn map[string]any) *voice.PhoneNumber {
	return &voice.PhoneNumber{
		ID:       dto.String(pn, "id"),
		Provider: ProviderID,
		Number:   dto.String(pn, "number"),
		Name:     dto.String(pn, "name"),
		AgentID:  dto.String(pn, "assistantId"),
		Raw:      pn,
	}
}

// ── Tool ──

func mapTool(tool map[string]any) *voice.Tool {
	fn := dto.Map(tool, "function")
	return &voice.Tool{
		ID:          dto.String(tool, "id"),
		Provider:    ProviderID,
		Type:        dto.String(tool, "type"),
		Name:        dto.String(fn, "name"),
		Description: dto.String(fn, "description"),
		Raw:         tool,
	}
}

func toolFunction(name, description string) map[string]any {
	if name == "" && description == "" {
		return nil
	}
	fn := map[string]any{}
	if name != "" {
		fn["name"] = name
	}
	if description != "" {
		fn["description"] = description
	}
	return fn
}

func createToolRequest(params voice.CreateToolParams) map[string]any {
	body := map[string]any{"type": params.Type}
	if fn := toolFunction(params.Name, params.Description); fn != nil {
		body["function"] = fn
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}

func updateToolRequest(params voice.UpdateToolParams) map[string]any {
	body := map[string]any{}
	if fn := toolFunction(params.Name, params.Description); fn != nil {
		body["function"] = fn
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}

// ── File ──

func mapFileStatus(status string) voice.FileStatus {
	switch status {
	case "processing":
		return voice.FileStatusProcessing
	case "done":
		return voice.FileStatusDone
	case "failed":
		return voice.FileStatusFailed
	default:
		return voice.FileStatusUnknown
	}
}

func mapFile(file map[string]any) *voice.VoiceFile {
	f := &voice.VoiceFile{
		ID:       dto.String(file, "id"),
		Provider: ProviderID,
		Name:     dto.String(file, "name"),
		Status:   mapFileStatus(dto.String(file, "status")),
		URL:      dto.String(file, "url"),
		MimeType: dto.String(file, "mimetype"),
		Metadata: dto.Map(file, "metadata"),
		Raw:      file,
	}
	if n, ok := dto.Number(file, "bytes"); ok {
		b := int64(n)
		f.Bytes = &b
	}
	return f
}

func fileUpload(params voice.CreateFileParams) FileUpload {
	up := FileUpload{Name: params.Name, File: params.File}
	if up.Name == "" {
		up.Name = "file"
	}
	fields := map[string]string{}
	if params.Name != "" {
		fields["name"] = params.Name
	}
	for k, v := range params.ProviderOptions {
		fields[k] = dto.FormatValue(v)
	}
	if len(fields) > 0 {
		up.Fields = fields
	}
	return up
}

func updateFileRequest(params voice.UpdateFileParams) map[string]any {
	body := map[string]any{}
	if params.Name != "" {
		body["name"] = params.Name
	}
	dto.Merge(body, params.ProviderOptions)
	return body
}
