package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

const maxUploadMemory = 32 << 20

type FileHandler struct {
	logger *zap.Logger
}

func NewFileHandler(logger *zap.Logger) *FileHandler {
	return &FileHandler{logger: logger}
}

// Create takes a multipart form with a "file" part, an optional "name"
// and an optional "provider_options" JSON object.
func (h *FileHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	params := voice.CreateFileParams{
		File: file,
		Name: r.FormValue("name"),
	}
	if params.Name == "" {
		params.Name = header.Filename
	}
	if raw := r.FormValue("provider_options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params.ProviderOptions); err != nil {
			writeError(w, http.StatusBadRequest, "provider_options must be a JSON object")
			return
		}
	}

	f, err := ProviderFromContext(r.Context()).Files.Create(r.Context(), params)
	if err != nil {
		h.fail(w, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	params, ok := pageParams(w, r)
	if !ok {
		return
	}

	page, err := ProviderFromContext(r.Context()).Files.List(r.Context(), &voice.ListFilesParams{
		Limit:  params.Limit,
		Cursor: params.Cursor,
	})
	if err != nil {
		h.fail(w, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := ProviderFromContext(r.Context()).Files.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req voice.UpdateFileParams
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	f, err := ProviderFromContext(r.Context()).Files.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.fail(w, "update", err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := ProviderFromContext(r.Context()).Files.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FileHandler) fail(w http.ResponseWriter, op string, err error) {
	logFailure(h.logger, "files", op, err)
	writeProviderError(w, err)
}
