// Package backend is the console's client for the welfare REST backend. It owns the wire
// format (DTOs, JSON codec, status classification) so services only see typed values and
// normalized errors.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"soloparent/internal/platform/tracer"
	"soloparent/pkg/requestcontext"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer records per-call outcomes. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveBackendCall(endpoint, outcome string, durationSeconds float64)
}

// Config configures a Client.
type Config struct {
	BaseURL    string
	HTTPClient HTTPDoer
	Tracer     tracer.Tracer
	Observer   Observer
}

// Client calls the welfare backend. The admin's backend token is read from the request's
// session and forwarded as a bearer token.
type Client struct {
	baseURL  string
	client   HTTPDoer
	tracer   tracer.Tracer
	observer Observer
}

// New creates a backend client. No client-side timeout is set; callers bound calls
// through their context.
func New(cfg Config) *Client {
	c := &Client{
		baseURL:  cfg.BaseURL,
		client:   cfg.HTTPClient,
		tracer:   cfg.Tracer,
		observer: cfg.Observer,
	}
	if c.client == nil {
		c.client = &http.Client{}
	}
	if c.tracer == nil {
		c.tracer = tracer.NewNoop()
	}
	return c
}

// call describes one backend request.
type call struct {
	endpoint string
	method   string
	path     string
	query    url.Values
	body     any
}

func (c *Client) do(ctx context.Context, in call, out any) (err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, tracer.SpanBackendCall,
		tracer.String(tracer.AttrEndpoint, in.endpoint),
		tracer.String(tracer.AttrMethod, in.method),
	)
	defer func() {
		span.End(err)
		if c.observer != nil {
			c.observer.ObserveBackendCall(in.endpoint, outcome(err), time.Since(start).Seconds())
		}
	}()

	var reqBody io.Reader
	if in.body != nil {
		payload, mErr := json.Marshal(in.body)
		if mErr != nil {
			return newError(ErrorInternal, in.endpoint, "failed to marshal request", mErr)
		}
		reqBody = bytes.NewReader(payload)
	}

	target := c.baseURL + in.path
	if len(in.query) > 0 {
		target += "?" + in.query.Encode()
	}
	req, rErr := http.NewRequestWithContext(ctx, in.method, target, reqBody)
	if rErr != nil {
		return newError(ErrorInternal, in.endpoint, "failed to create request", rErr)
	}
	req.Header.Set("Accept", "application/json")
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := requestcontext.Session(ctx).BackendToken; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, dErr := c.client.Do(req)
	if dErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(dErr, context.DeadlineExceeded) {
			return newError(ErrorTimeout, in.endpoint, "request timeout", dErr)
		}
		return newError(ErrorUnavailable, in.endpoint, "failed to execute request", dErr)
	}
	defer resp.Body.Close()
	span.SetAttributes(tracer.Int(tracer.AttrStatusCode, resp.StatusCode))

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return newError(ErrorBadData, in.endpoint, "failed to read response", readErr)
	}

	// The caller may have gone away while the response was in flight.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return newError(ErrorTimeout, in.endpoint, "caller context done", ctxErr)
	}

	if category, ok := classifyStatus(resp.StatusCode); !ok {
		be := newError(category, in.endpoint, errorMessage(resp.StatusCode, respBody), nil)
		be.Status = resp.StatusCode
		return be
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if uErr := json.Unmarshal(respBody, out); uErr != nil {
		return newError(ErrorBadData, in.endpoint, "failed to decode response", uErr)
	}
	return nil
}

func classifyStatus(status int) (ErrorCategory, bool) {
	switch {
	case status >= 200 && status < 300:
		return "", true
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrorAuthentication, false
	case status == http.StatusNotFound:
		return ErrorNotFound, false
	case status == http.StatusConflict:
		return ErrorConflict, false
	case status == http.StatusTooManyRequests:
		return ErrorLimited, false
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ErrorRejected, false
	case status >= 500:
		return ErrorUnavailable, false
	default:
		return ErrorInternal, false
	}
}

// errorMessage prefers the backend's own {message} or {error} text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return string(CategoryOf(err))
}

// Ping reports whether the backend answers HTTP at all. Any response status counts as
// reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return newError(ErrorInternal, "ping", "", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return newError(ErrorUnavailable, "ping", "", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
