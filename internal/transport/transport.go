package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Harshitk-cp/voicebridge/internal/buildconfig"
)

const (
	// RequestIDHeader is sent with every vendor request for tracing.
	RequestIDHeader = "X-Request-ID"

	defaultTimeout = 30 * time.Second
)

// Config configures a Client. Only BaseURL and APIKey are required.
type Config struct {
	Provider   string
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *zap.Logger
	// RequestsPerSecond > 0 throttles outgoing requests client-side.
	RequestsPerSecond float64
	Burst             int
}

// Client executes authenticated JSON requests against one vendor API.
// It never retries; a failed request surfaces immediately.
type Client struct {
	provider   string
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
	limiter    *rate.Limiter
}

func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		provider:   cfg.Provider,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logger:     logger.With(zap.String("provider", cfg.Provider)),
	}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// APIError is a non-2xx vendor response.
type APIError struct {
	Code    int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Code)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Message)
}

func (e *APIError) StatusCode() int {
	return e.Code
}

// Do sends body (if non-nil) as JSON and decodes the response into out
// (if non-nil). Empty response bodies leave out untouched.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// Upload sends a multipart/form-data request carrying one file part and
// plain form fields.
func (c *Client) Upload(ctx context.Context, path, fileField, fileName string, file io.Reader, fields map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("write form field %s: %w", k, err)
		}
	}
	if file != nil {
		if fileName == "" {
			fileName = "upload"
		}
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildconfig.UserAgent())
	req.Header.Set(RequestIDHeader, requestID(ctx))
	return req, nil
}

type requestIDKey struct{}

// WithRequestID makes every request sent with ctx carry id instead of a
// freshly generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		return id
	}
	return uuid.NewString()
}

func (c *Client) send(req *http.Request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("vendor request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("request_id", req.Header.Get(RequestIDHeader)),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("vendor request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", req.Header.Get(RequestIDHeader)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Code:    resp.StatusCode,
			Message: errorMessage(respBody),
			Body:    respBody,
		}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// errorMessage pulls a human readable message out of a vendor error
// body, falling back to the raw text.
func errorMessage(body []byte) string {
	var parsed struct {
		Message any `json:"message"`
		Error   any `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if s := messageText(parsed.Message); s != "" {
			return s
		}
		if s := messageText(parsed.Error); s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(body))
}

func messageText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := messageText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		return messageText(t["message"])
	}
	return ""
}
