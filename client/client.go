package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/jsonapi"
	"github.com/a-h/lawbuddy/models"
	"github.com/google/uuid"
)

// DefaultTimeout applies to every call unless overridden with WithTimeout.
const DefaultTimeout = 60 * time.Second

func New(baseURL, apiKey string, opts ...Option) Client {
	c := Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	log     *slog.Logger
}

func (c Client) BaseURL() string {
	return c.baseURL
}

func (c Client) Health(ctx context.Context) (resp models.HealthGetResponse, err error) {
	body, err := c.do(ctx, http.MethodGet, nil, "health")
	if err != nil {
		return resp, err
	}
	if err = json.Unmarshal(body, &resp); err != nil {
		return resp, DecodeError{Err: err}
	}
	return resp, nil
}

func (c Client) Ask(ctx context.Context, req models.AskPostRequest) (resp models.AskPostResponse, err error) {
	body, err := c.do(ctx, http.MethodPost, req, "ask")
	if err != nil {
		return resp, err
	}
	if err = json.Unmarshal(body, &resp); err != nil {
		return resp, DecodeError{Err: err}
	}
	return resp, nil
}

func (c Client) DocumentsInitialize(ctx context.Context) (err error) {
	_, err = c.do(ctx, http.MethodPost, nil, "documents", "initialize")
	return err
}

// SystemInfo returns the raw JSON returned by the service. The body must be
// valid JSON, but its shape is not checked.
func (c Client) SystemInfo(ctx context.Context) (info json.RawMessage, err error) {
	body, err := c.do(ctx, http.MethodGet, nil, "system", "info")
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, DecodeError{Err: fmt.Errorf("response body is not valid JSON")}
	}
	return json.RawMessage(body), nil
}

func (c Client) do(ctx context.Context, method string, req any, path ...string) (body []byte, err error) {
	url, err := jsonapi.URL(c.baseURL).Path(path...).String()
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", c.baseURL, err)
	}

	var reqBody io.Reader
	if req != nil {
		buf, err := json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if req != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()

	log := c.log.With(slog.String("method", method), slog.String("url", url), slog.String("requestID", requestID))
	log.Debug("sending request")
	start := time.Now()

	res, err := jsonapi.Raw(httpReq,
		jsonapi.WithRequestHeader("Authorization", c.apiKey),
		jsonapi.WithRequestHeader("X-Request-ID", requestID))
	if err != nil {
		log.Debug("request failed", slog.Any("error", err))
		return nil, NetworkError{Err: err}
	}
	defer res.Body.Close()

	body, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	log.Debug("received response", slog.Int("status", res.StatusCode), slog.Duration("duration", time.Since(start)))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, jsonapi.InvalidStatusError{
			Status: res.StatusCode,
			Body:   string(body),
		}
	}
	return body, nil
}
