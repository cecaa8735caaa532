package vapi

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/internal/transport"
)

const DefaultBaseURL = "https://api.vapi.ai"

// The *API interfaces are the Vapi client surface the managers depend
// on. Query maps are sent as URL parameters.

type AssistantAPI interface {
	Create(ctx context.Context, body map[string]any) (map[string]any, error)
	List(ctx context.Context, query map[string]any) ([]map[string]any, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

type CallAPI interface {
	Create(ctx context.Context, body map[string]any) (map[string]any, error)
	List(ctx context.Context, query map[string]any) ([]map[string]any, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

type PhoneNumberAPI interface {
	List(ctx context.Context, query map[string]any) ([]map[string]any, error)
	Get(ctx context.Context, id string) (map[string]any, error)
}

type ToolAPI interface {
	Create(ctx context.Context, body map[string]any) (map[string]any, error)
	List(ctx context.Context, query map[string]any) ([]map[string]any, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

// FileUpload is a multipart file creation request.
type FileUpload struct {
	Name   string
	File   io.Reader
	Fields map[string]string
}

type FileAPI interface {
	Create(ctx context.Context, upload FileUpload) (map[string]any, error)
	List(ctx context.Context) ([]map[string]any, error)
	Get(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

// Client groups the Vapi resource clients.
type Client struct {
	Assistants   AssistantAPI
	Calls        CallAPI
	PhoneNumbers PhoneNumberAPI
	Tools        ToolAPI
	Files        FileAPI
}

// NewClient returns a REST-backed Vapi client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	t := transport.New(transport.Config{
		Provider:          ProviderID,
		BaseURL:           baseURL,
		APIKey:            cfg.APIKey,
		HTTPClient:        cfg.HTTPClient,
		Logger:            cfg.Logger,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	})
	return &Client{
		Assistants:   &resource{t: t, path: "/assistant"},
		Calls:        &resource{t: t, path: "/call"},
		PhoneNumbers: &resource{t: t, path: "/phone-number"},
		Tools:        &resource{t: t, path: "/tool"},
		Files:        &fileClient{resource: resource{t: t, path: "/file"}},
	}
}

func toQuery(query map[string]any) url.Values {
	if len(query) == 0 {
		return nil
	}
	v := make(url.Values, len(query))
	for k, val := range query {
		v.Set(k, dto.FormatValue(val))
	}
	return v
}

// resource is a Vapi collection: every resource shares the same
// /{name} and /{name}/{id} layout.
type resource struct {
	t    *transport.Client
	path string
}

func (r *resource) item(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (r *resource) object(ctx context.Context, method, path string, body map[string]any) (map[string]any, error) {
	var out map[string]any
	var in any
	if body != nil {
		in = body
	}
	if err := r.t.Do(ctx, method, path, nil, in, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func (r *resource) Create(ctx context.Context, body map[string]any) (map[string]any, error) {
	return r.object(ctx, http.MethodPost, r.path, body)
}

func (r *resource) List(ctx context.Context, query map[string]any) ([]map[string]any, error) {
	var out []map[string]any
	if err := r.t.Do(ctx, http.MethodGet, r.path, toQuery(query), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *resource) Get(ctx context.Context, id string) (map[string]any, error) {
	return r.object(ctx, http.MethodGet, r.item(id), nil)
}

func (r *resource) Update(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	return r.object(ctx, http.MethodPatch, r.item(id), body)
}

func (r *resource) Delete(ctx context.Context, id string) error {
	return r.t.Do(ctx, http.MethodDelete, r.item(id), nil, nil, nil)
}

type fileClient struct {
	resource
}

func (c *fileClient) Create(ctx context.Context, upload FileUpload) (map[string]any, error) {
	var out map[string]any
	if err := c.t.Upload(ctx, c.path, "file", upload.Name, upload.File, upload.Fields, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func (c *fileClient) List(ctx context.Context) ([]map[string]any, error) {
	return c.resource.List(ctx, nil)
}
