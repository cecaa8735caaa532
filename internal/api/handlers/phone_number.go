package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

type PhoneNumberHandler struct {
	logger *zap.Logger
}

func NewPhoneNumberHandler(logger *zap.Logger) *PhoneNumberHandler {
	return &PhoneNumberHandler{logger: logger}
}

func (h *PhoneNumberHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := pageParams(w, r)
	if !ok {
		return
	}

	page, err := ProviderFromContext(r.Context()).PhoneNumbers.List(r.Context(), &voice.ListPhoneNumbersParams{
		Limit:  params.Limit,
		Cursor: params.Cursor,
	})
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *PhoneNumberHandler) Get(w http.ResponseWriter, r *http.Request) {
	pn, err := ProviderFromContext(r.Context()).PhoneNumbers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, pn)
}

func (h *PhoneNumberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req voice.CreatePhoneNumberParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pn, err := provisioner(r).Create(r.Context(), req)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, pn)
}

func (h *PhoneNumberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req voice.UpdatePhoneNumberParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pn, err := provisioner(r).Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, pn)
}

func (h *PhoneNumberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := provisioner(r).Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// provisioner is only called behind Require(CapabilityPhoneProvisioning).
func provisioner(r *http.Request) voice.PhoneNumberProvisioner {
	return ProviderFromContext(r.Context()).PhoneNumbers.(voice.PhoneNumberProvisioner)
}

func (h *PhoneNumberHandler) fail(w http.ResponseWriter, op string, err error) {
	logFailure(h.logger, "phone_numbers", op, err)
	writeProviderError(w, err)
}
