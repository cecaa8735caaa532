package middleware

import (
	"net/http"
	"sync/atomic"
)

// MetricsCollector counts requests by outcome. 502s are tracked apart
// from other errors since they mean the vendor, not the caller, failed.
type MetricsCollector struct {
	requests       atomic.Int64
	clientErrors   atomic.Int64
	upstreamErrors atomic.Int64
	serverErrors   atomic.Int64
}

type MetricsSnapshot struct {
	Requests       int64 `json:"requests_total"`
	ClientErrors   int64 `json:"client_errors_total"`
	UpstreamErrors int64 `json:"upstream_errors_total"`
	ServerErrors   int64 `json:"server_errors_total"`
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{}
}

func (mc *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mc.requests.Add(1)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		switch {
		case rw.statusCode == http.StatusBadGateway:
			mc.upstreamErrors.Add(1)
		case rw.statusCode >= http.StatusInternalServerError:
			mc.serverErrors.Add(1)
		case rw.statusCode >= http.StatusBadRequest:
			mc.clientErrors.Add(1)
		}
	})
}

func (mc *MetricsCollector) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:       mc.requests.Load(),
		ClientErrors:   mc.clientErrors.Load(),
		UpstreamErrors: mc.upstreamErrors.Load(),
		ServerErrors:   mc.serverErrors.Load(),
	}
}
