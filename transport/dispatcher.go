package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-discord-oauth/core"
)

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB

// Dispatcher is the single chokepoint for provider-bound HTTP calls: it
// attaches the bearer credential, performs exactly one round-trip with no
// retry, and converts any failure through the status-driven taxonomy. The
// base URL is per-instance configuration so tests point an instance at a
// stub server instead of mutating process state.
type Dispatcher struct {
	BaseURL              string
	Client               core.HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
	RateLimits           core.RateLimitPolicy
}

func NewDispatcher(baseURL string, client core.HTTPDoer) *Dispatcher {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &Dispatcher{
		BaseURL:              strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Client:               client,
		DefaultHeaders:       map[string]string{},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
	}
}

// Do performs one provider call. The access token must classify as a plain
// string before any I/O; mutating verbs forward the body, GET forwards
// query values. Success bodies are returned verbatim.
func (d *Dispatcher) Do(ctx context.Context, req core.TransportRequest) (core.TransportResponse, error) {
	if d == nil || d.Client == nil {
		return core.TransportResponse{}, transportError(
			"transport: dispatcher requires an http client",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			map[string]any{"path": req.Path},
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if _, override := headerValue(req.Headers, "Authorization"); !override {
		if tag := core.Classify(req.AccessToken); tag != core.TagString {
			return core.TransportResponse{}, invalidAccessTokenError(req.AccessToken, tag)
		}
	}

	method := strings.TrimSpace(strings.ToUpper(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	parsedURL, err := url.Parse(d.BaseURL + req.Path)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			http.StatusBadRequest,
			map[string]any{"path": req.Path},
		)
	}

	if method == http.MethodGet {
		query := parsedURL.Query()
		for key, value := range req.Query {
			if strings.TrimSpace(key) == "" {
				continue
			}
			query.Set(strings.TrimSpace(key), value)
		}
		parsedURL.RawQuery = query.Encode()
	}

	bucket := core.RateLimitKey{Method: method, Bucket: req.Path}
	if d.RateLimits != nil {
		if err := d.RateLimits.BeforeCall(ctx, bucket); err != nil {
			return core.TransportResponse{}, throttleError(err)
		}
	}

	requestCtx := ctx
	cancel := func() {}
	if req.Timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, req.Timeout)
	}
	defer cancel()

	var body io.Reader
	if method != http.MethodGet && len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(requestCtx, method, parsedURL.String(), body)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create http request",
			http.StatusBadRequest,
			map[string]any{"method": method, "url": parsedURL.String()},
		)
	}

	for key, value := range d.DefaultHeaders {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), value)
	}
	for key, value := range req.Headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), value)
	}
	if httpReq.Header.Get("Authorization") == "" && req.AccessToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.AccessToken)
	}

	httpRes, err := d.Client.Do(httpReq)
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute http request",
			http.StatusBadGateway,
			map[string]any{"method": method, "url": parsedURL.String()},
		)
	}
	defer httpRes.Body.Close()

	maxBodyBytes := d.MaxResponseBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultResponseBodyLimit
	}
	payload, err := io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes+1))
	if err != nil {
		return core.TransportResponse{}, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			http.StatusBadGateway,
			map[string]any{"status_code": httpRes.StatusCode},
		)
	}
	if int64(len(payload)) > maxBodyBytes {
		return core.TransportResponse{}, transportError(
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", maxBodyBytes),
			goerrors.CategoryExternal,
			http.StatusBadGateway,
			map[string]any{"status_code": httpRes.StatusCode},
		)
	}

	headers := flattenHeaders(httpRes.Header)
	if d.RateLimits != nil {
		meta := core.ProviderResponseMeta{
			StatusCode: httpRes.StatusCode,
			Headers:    headers,
		}
		if err := d.RateLimits.AfterCall(ctx, bucket, meta); err != nil {
			return core.TransportResponse{}, transportWrapError(
				err,
				goerrors.CategoryInternal,
				"transport: record rate limit state",
				http.StatusInternalServerError,
				map[string]any{"method": method, "path": req.Path},
			)
		}
	}

	if httpRes.StatusCode < http.StatusOK || httpRes.StatusCode >= http.StatusMultipleChoices {
		return core.TransportResponse{}, classifyFailure(httpRes.StatusCode, payload)
	}

	return core.TransportResponse{
		StatusCode: httpRes.StatusCode,
		Headers:    headers,
		Body:       payload,
		Metadata: map[string]any{
			"method": method,
			"path":   req.Path,
		},
	}, nil
}

func flattenHeaders(headers http.Header) map[string]string {
	if len(headers) == 0 {
		return map[string]string{}
	}
	flat := make(map[string]string, len(headers))
	for key, values := range headers {
		if len(values) == 0 {
			flat[key] = ""
			continue
		}
		flat[key] = strings.Join(values, ",")
	}
	return flat
}

func headerValue(headers map[string]string, key string) (string, bool) {
	for existing, value := range headers {
		if strings.EqualFold(strings.TrimSpace(existing), key) {
			return value, true
		}
	}
	return "", false
}

var _ core.Dispatcher = (*Dispatcher)(nil)
