package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

type KnowledgeBaseHandler struct {
	logger *zap.Logger
}

func NewKnowledgeBaseHandler(logger *zap.Logger) *KnowledgeBaseHandler {
	return &KnowledgeBaseHandler{logger: logger}
}

func (h *KnowledgeBaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req voice.CreateKnowledgeBaseParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	kb, err := ProviderFromContext(r.Context()).KnowledgeBase.Create(r.Context(), req)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, kb)
}

func (h *KnowledgeBaseHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := pageParams(w, r)
	if !ok {
		return
	}

	page, err := ProviderFromContext(r.Context()).KnowledgeBase.List(r.Context(), &voice.ListKnowledgeBaseParams{
		Limit:  params.Limit,
		Cursor: params.Cursor,
	})
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *KnowledgeBaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	kb, err := ProviderFromContext(r.Context()).KnowledgeBase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, kb)
}

func (h *KnowledgeBaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ProviderFromContext(r.Context()).KnowledgeBase.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *KnowledgeBaseHandler) fail(w http.ResponseWriter, op string, err error) {
	logFailure(h.logger, "knowledge_bases", op, err)
	writeProviderError(w, err)
}
