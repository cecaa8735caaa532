package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Harshitk-cp/voicebridge/voice"
)

type contextKey string

const providerContextKey contextKey = "provider"

// ProviderFromContext returns the provider resolved by ProviderHandler.Resolve.
func ProviderFromContext(ctx context.Context) *voice.Provider {
	p, _ := ctx.Value(providerContextKey).(*voice.Provider)
	return p
}

type ProviderHandler struct {
	registry *voice.Registry
}

func NewProviderHandler(registry *voice.Registry) *ProviderHandler {
	return &ProviderHandler{registry: registry}
}

var allCapabilities = []voice.Capability{
	voice.CapabilityAgents,
	voice.CapabilityCalls,
	voice.CapabilityPhoneNumbers,
	voice.CapabilityPhoneProvisioning,
	voice.CapabilityTools,
	voice.CapabilityFiles,
	voice.CapabilityKnowledgeBase,
}

type providerResponse struct {
	ID           string             `json:"id"`
	Vendor       string             `json:"vendor"`
	Capabilities []voice.Capability `json:"capabilities"`
}

func describe(id string, p *voice.Provider) providerResponse {
	caps := make([]voice.Capability, 0, len(allCapabilities))
	for _, c := range allCapabilities {
		if p.Supports(c) {
			caps = append(caps, c)
		}
	}
	return providerResponse{ID: id, Vendor: p.ProviderID, Capabilities: caps}
}

func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	ids := h.registry.IDs()
	out := make([]providerResponse, 0, len(ids))
	for _, id := range ids {
		p, err := h.registry.Provider(id)
		if err != nil {
			continue
		}
		out = append(out, describe(id, p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"providers": out})
}

func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, describe(chi.URLParam(r, "provider"), ProviderFromContext(r.Context())))
}

// Resolve looks up the {provider} URL parameter and stores the provider
// in the request context.
func (h *ProviderHandler) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.registry.Provider(chi.URLParam(r, "provider"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		ctx := context.WithValue(r.Context(), providerContextKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Require rejects requests with 501 when the resolved provider lacks c.
func Require(c voice.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := ProviderFromContext(r.Context())
			if !p.Supports(c) {
				writeError(w, http.StatusNotImplemented, "provider does not support "+string(c))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
