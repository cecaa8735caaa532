package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

type AgentHandler struct {
	logger *zap.Logger
}

func NewAgentHandler(logger *zap.Logger) *AgentHandler {
	return &AgentHandler{logger: logger}
}

func (h *AgentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req voice.CreateAgentParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	agent, err := ProviderFromContext(r.Context()).Agents.Create(r.Context(), req)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, agent)
}

func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := pageParams(w, r)
	if !ok {
		return
	}

	page, err := ProviderFromContext(r.Context()).Agents.List(r.Context(), &voice.ListAgentsParams{
		Limit:  params.Limit,
		Cursor: params.Cursor,
	})
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *AgentHandler) Get(w http.ResponseWriter, r *http.Request) {
	agent, err := ProviderFromContext(r.Context()).Agents.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, agent)
}

func (h *AgentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req voice.UpdateAgentParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	agent, err := ProviderFromContext(r.Context()).Agents.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, agent)
}

func (h *AgentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ProviderFromContext(r.Context()).Agents.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AgentHandler) fail(w http.ResponseWriter, op string, err error) {
	logFailure(h.logger, "agents", op, err)
	writeProviderError(w, err)
}
