package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

type ToolHandler struct {
	logger *zap.Logger
}

func NewToolHandler(logger *zap.Logger) *ToolHandler {
	return &ToolHandler{logger: logger}
}

func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req voice.CreateToolParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Type == "" {
		writeError(w, http.StatusBadRequest, "type is required")
		return
	}

	tool, err := ProviderFromContext(r.Context()).Tools.Create(r.Context(), req)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, tool)
}

func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := pageParams(w, r)
	if !ok {
		return
	}

	page, err := ProviderFromContext(r.Context()).Tools.List(r.Context(), &voice.ListToolsParams{
		Limit:  params.Limit,
		Cursor: params.Cursor,
	})
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	tool, err := ProviderFromContext(r.Context()).Tools.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req voice.UpdateToolParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool, err := ProviderFromContext(r.Context()).Tools.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ProviderFromContext(r.Context()).Tools.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ToolHandler) fail(w http.ResponseWriter, op string, err error) {
	logFailure(h.logger, "tools", op, err)
	writeProviderError(w, err)
}
