package retell

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Harshitk-cp/voicebridge/internal/dto"
	"github.com/Harshitk-cp/voicebridge/internal/transport"
)

const DefaultBaseURL = "https://api.retellai.com"

// The *API interfaces are the vendor client surface the managers
// depend on. Bodies and responses are the vendor's JSON shapes.

type AgentAPI interface {
	Create(ctx context.Context, body map[string]any) (map[string]any, error)
	List(ctx context.Context) ([]map[string]any, error)
	Retrieve(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

type CallAPI interface {
	CreatePhoneCall(ctx context.Context, body map[string]any) (map[string]any, error)
	List(ctx context.Context, query map[string]any) ([]map[string]any, error)
	Retrieve(ctx context.Context, id string) (map[string]any, error)
	Update(ctx context.Context, id string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

type PhoneNumberAPI interface {
	Create(ctx context.Context, body map[string]any) (map[string]any, error)
	List(ctx context.Context) ([]map[string]any, error)
	Retrieve(ctx context.Context, number string) (map[string]any, error)
	Update(ctx context.Context, number string, body map[string]any) (map[string]any, error)
	Delete(ctx context.Context, number string) error
}

type KnowledgeBaseAPI interface {
	Create(ctx context.Context, body map[string]any) (map[string]any, error)
	List(ctx context.Context) ([]map[string]any, error)
	Retrieve(ctx context.Context, id string) (map[string]any, error)
	Delete(ctx context.Context, id string) error
}

// Client groups the Retell resource clients.
type Client struct {
	Agent         AgentAPI
	Call          CallAPI
	PhoneNumber   PhoneNumberAPI
	KnowledgeBase KnowledgeBaseAPI
}

// NewClient returns a REST-backed Retell client.
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
		Agent:         &agentClient{t: t},
		Call:          &callClient{t: t},
		PhoneNumber:   &phoneNumberClient{t: t},
		KnowledgeBase: &knowledgeBaseClient{t: t},
	}
}

func object(ctx context.Context, t *transport.Client, method, path string, body map[string]any) (map[string]any, error) {
	var out map[string]any
	var in any
	if body != nil {
		in = body
	}
	if err := t.Do(ctx, method, path, nil, in, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func objects(ctx context.Context, t *transport.Client, method, path string, body map[string]any) ([]map[string]any, error) {
	var out []map[string]any
	var in any
	if body != nil {
		in = body
	}
	if err := t.Do(ctx, method, path, nil, in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type agentClient struct{ t *transport.Client }

func (c *agentClient) Create(ctx context.Context, body map[string]any) (map[string]any, error) {
	return object(ctx, c.t, http.MethodPost, "/create-agent", body)
}

func (c *agentClient) List(ctx context.Context) ([]map[string]any, error) {
	return objects(ctx, c.t, http.MethodGet, "/list-agents", nil)
}

func (c *agentClient) Retrieve(ctx context.Context, id string) (map[string]any, error) {
	return object(ctx, c.t, http.MethodGet, "/get-agent/"+url.PathEscape(id), nil)
}

func (c *agentClient) Update(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	return object(ctx, c.t, http.MethodPatch, "/update-agent/"+url.PathEscape(id), body)
}

func (c *agentClient) Delete(ctx context.Context, id string) error {
	return c.t.Do(ctx, http.MethodDelete, "/delete-agent/"+url.PathEscape(id), nil, nil, nil)
}

type callClient struct{ t *transport.Client }

func (c *callClient) CreatePhoneCall(ctx context.Context, body map[string]any) (map[string]any, error) {
	return object(ctx, c.t, http.MethodPost, "/v2/create-phone-call", body)
}

// List posts the filter body; Retell takes list criteria in the request body.
func (c *callClient) List(ctx context.Context, query map[string]any) ([]map[string]any, error) {
	if query == nil {
		query = map[string]any{}
	}
	return objects(ctx, c.t, http.MethodPost, "/v2/list-calls", query)
}

func (c *callClient) Retrieve(ctx context.Context, id string) (map[string]any, error) {
	return object(ctx, c.t, http.MethodGet, "/v2/get-call/"+url.PathEscape(id), nil)
}

func (c *callClient) Update(ctx context.Context, id string, body map[string]any) (map[string]any, error) {
	return object(ctx, c.t, http.MethodPatch, "/v2/update-call/"+url.PathEscape(id), body)
}

func (c *callClient) Delete(ctx context.Context, id string) error {
	return c.t.Do(ctx, http.MethodDelete, "/v2/delete-call/"+url.PathEscape(id), nil, nil, nil)
}

type phoneNumberClient struct{ t *transport.Client }

func (c *phoneNumberClient) Create(ctx context.Context, body map[string]any) (map[string]any, error) {
	return object(ctx, c.t, http.MethodPost, "/create-phone-number", body)
}

func (c *phoneNumberClient) List(ctx context.Context) ([]map[string]any, error) {
	return objects(ctx, c.t, http.MethodGet, "/list-phone-numbers", nil)
}

func (c *phoneNumberClient) Retrieve(ctx context.Context, number string) (map[string]any, error) {
	return object(ctx, c.t, http.MethodGet, "/get-phone-number/"+url.PathEscape(number), nil)
}

func (c *phoneNumberClient) Update(ctx context.Context, number string, body map[string]any) (map[string]any, error) {
	return object(ctx, c.t, http.MethodPatch, "/update-phone-number/"+url.PathEscape(number), body)
}

func (c *phoneNumberClient) Delete(ctx context.Context, number string) error {
	return c.t.Do(ctx, http.MethodDelete, "/delete-phone-number/"+url.PathEscape(number), nil, nil, nil)
}

type knowledgeBaseClient struct{ t *transport.Client }

// Create posts a multipart form; Retell's knowledge base endpoint takes no
// JSON body. Non-string values are sent JSON encoded.
func (c *knowledgeBaseClient) Create(ctx context.Context, body map[string]any) (map[string]any, error) {
	fields := make(map[string]string, len(body))
	for k, v := range body {
		fields[k] = dto.FormatValue(v)
	}
	var out map[string]any
	if err := c.t.Upload(ctx, "/create-knowledge-base", "", "", nil, fields, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

func (c *knowledgeBaseClient) List(ctx context.Context) ([]map[string]any, error) {
	return objects(ctx, c.t, http.MethodGet, "/list-knowledge-bases", nil)
}

func (c *knowledgeBaseClient) Retrieve(ctx context.Context, id string) (map[string]any, error) {
	return object(ctx, c.t, http.MethodGet, "/get-knowledge-base/"+url.PathEscape(id), nil)
}

func (c *knowledgeBaseClient) Delete(ctx context.Context, id string) error {
	return c.t.Do(ctx, http.MethodDelete, "/delete-knowledge-base/"+url.PathEscape(id), nil, nil, nil)
}
