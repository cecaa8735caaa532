package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/Harshitk-cp/voicebridge/internal/transport"
)

// RequestIDHeader is shared with the vendor transport so one id follows
// a request from the gateway to Retell or Vapi.
const RequestIDHeader = transport.RequestIDHeader

const requestIDKey = contextKey("request_id")

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestID reuses an incoming X-Request-ID or generates one, echoes it
// on the response and stores it in the context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		ctx = transport.WithRequestID(ctx, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
