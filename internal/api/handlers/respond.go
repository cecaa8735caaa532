package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Harshitk-cp/voicebridge/voice"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// StatusFor maps a manager error to the gateway's HTTP status. Vendor
// auth failures surface as 502 since the gateway holds the credentials.
// A bare *voice.Error comes from an unimplemented manager method.
func StatusFor(err error) int {
	var nf *voice.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	var ae *voice.AuthenticationError
	if errors.As(err, &ae) {
		return http.StatusBadGateway
	}
	if pe, ok := voice.AsProviderError(err); ok {
		if pe.Cause == nil {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	}
	// Checked last: ProviderError also matches *voice.Error.
	var ve *voice.Error
	if errors.As(err, &ve) {
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeProviderError(w http.ResponseWriter, err error) {
	writeError(w, StatusFor(err), err.Error())
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// logFailure records upstream failures. Locally rejected input is the
// caller's problem and is not logged.
func logFailure(logger *zap.Logger, resource, op string, err error) {
	if logger == nil || StatusFor(err) < http.StatusInternalServerError {
		return
	}
	logger.Warn("provider request failed",
		zap.String("resource", resource),
		zap.String("op", op),
		zap.Int("vendor_status", voice.StatusCode(err)),
		zap.Error(err),
	)
}
