package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

type CallHandler struct {
	logger *zap.Logger
}

func NewCallHandler(logger *zap.Logger) *CallHandler {
	return &CallHandler{logger: logger}
}

func (h *CallHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req voice.CreateCallParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ToNumber == "" {
		writeError(w, http.StatusBadRequest, "to_number is required")
		return
	}

	call, err := ProviderFromContext(r.Context()).Calls.Create(r.Context(), req)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, call)
}

// List maps query parameters onto the unified call filters:
// agent_id, phone_number_id, call_status, direction, call_type,
// user_sentiment, call_successful, start_time, end_time, sort_field,
// sort_order, and metadata.<key> / dynamic_variables.<key>.
func (h *CallHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := pageParams(w, r)
	if !ok {
		return
	}
	params, err := listCallsParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	params.Limit = page.Limit
	params.Cursor = page.Cursor

	calls, err := ProviderFromContext(r.Context()).Calls.List(r.Context(), params)
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, calls)
}

func listCallsParams(r *http.Request) (*voice.ListCallsParams, error) {
	q := r.URL.Query()
	params := &voice.ListCallsParams{
		AgentID:          q.Get("agent_id"),
		PhoneNumberID:    q.Get("phone_number_id"),
		CallStatus:       q.Get("call_status"),
		Direction:        voice.CallDirection(q.Get("direction")),
		CallType:         q.Get("call_type"),
		UserSentiment:    q.Get("user_sentiment"),
		StartTime:        q.Get("start_time"),
		EndTime:          q.Get("end_time"),
		Metadata:         queryPrefixed(q, "metadata"),
		DynamicVariables: queryPrefixed(q, "dynamic_variables"),
	}
	if s := q.Get("call_successful"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, errInvalidQuery("call_successful must be true or false")
		}
		params.CallSuccessful = &b
	}
	field, order := q.Get("sort_field"), q.Get("sort_order")
	if field != "" || order != "" {
		if order != "" && order != voice.SortOrderAsc && order != voice.SortOrderDesc {
			return nil, errInvalidQuery("sort_order must be asc or desc")
		}
		params.Sort = &voice.CallSort{Field: field, Order: order}
	}
	return params, nil
}

func (h *CallHandler) Get(w http.ResponseWriter, r *http.Request) {
	call, err := ProviderFromContext(r.Context()).Calls.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *CallHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req voice.UpdateCallParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	call, err := ProviderFromContext(r.Context()).Calls.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *CallHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ProviderFromContext(r.Context()).Calls.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CallHandler) fail(w http.ResponseWriter, op string, err error) {
	logFailure(h.logger, "calls", op, err)
	writeProviderError(w, err)
}
