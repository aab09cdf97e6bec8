package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-discord-oauth/core"
)

var ErrStateNotFound = errors.New("ratelimit: state not found")

// State is the last known rate-limit bookkeeping for one route bucket,
// built from the provider's X-RateLimit-* and Retry-After response headers.
type State struct {
	Key            core.RateLimitKey
	Limit          int
	Remaining      int
	ResetAt        *time.Time
	RetryAfter     *time.Duration
	ThrottledUntil *time.Time
	LastStatus     int
	UpdatedAt      time.Time
}

type StateStore interface {
	Get(ctx context.Context, key core.RateLimitKey) (State, error)
	Upsert(ctx context.Context, state State) error
}

// ThrottledError is raised before dispatch while a known throttle window is
// still open. The library never retries; the retry hint is surfaced to the
// caller instead.
type ThrottledError struct {
	Method     string
	Bucket     string
	RetryAfter time.Duration
}

func (e ThrottledError) Error() string {
	return fmt.Sprintf(
		"ratelimit: bucket %s %s throttled for %s",
		strings.TrimSpace(e.Method),
		strings.TrimSpace(e.Bucket),
		e.RetryAfter,
	)
}

func (e ThrottledError) ToServiceError() *goerrors.Error {
	metadata := map[string]any{
		"method": strings.TrimSpace(e.Method),
		"bucket": strings.TrimSpace(e.Bucket),
	}
	if e.RetryAfter > 0 {
		metadata["retry_after_ms"] = e.RetryAfter.Milliseconds()
	}
	return goerrors.New(e.Error(), goerrors.CategoryRateLimit).
		WithCode(http.StatusTooManyRequests).
		WithTextCode(core.AuthErrorRateLimited).
		WithMetadata(metadata)
}

// HeaderPolicy records rate-limit response headers per bucket and fails
// fast while a window is open. It performs no scheduling and no retries.
type HeaderPolicy struct {
	Store            StateStore
	Now              func() time.Time
	DefaultRetryHint time.Duration
}

func NewHeaderPolicy(store StateStore) *HeaderPolicy {
	return &HeaderPolicy{
		Store:            store,
		Now:              func() time.Time { return time.Now().UTC() },
		DefaultRetryHint: 5 * time.Second,
	}
}

func (p *HeaderPolicy) BeforeCall(ctx context.Context, key core.RateLimitKey) error {
	if p == nil || p.Store == nil {
		return nil
	}
	state, err := p.Store.Get(ctx, normalizeKey(key))
	if err != nil {
		if errors.Is(err, ErrStateNotFound) {
			return nil
		}
		return err
	}

	now := p.now()
	if until := state.ThrottledUntil; until != nil && now.Before(*until) {
		return ThrottledError{Method: state.Key.Method, Bucket: state.Key.Bucket, RetryAfter: until.Sub(now)}
	}
	if state.Remaining == 0 && state.ResetAt != nil && now.Before(*state.ResetAt) {
		return ThrottledError{Method: state.Key.Method, Bucket: state.Key.Bucket, RetryAfter: state.ResetAt.Sub(now)}
	}
	return nil
}

func (p *HeaderPolicy) AfterCall(ctx context.Context, key core.RateLimitKey, res core.ProviderResponseMeta) error {
	if p == nil || p.Store == nil {
		return nil
	}
	key = normalizeKey(key)
	now := p.now()
	state, err := p.Store.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrStateNotFound) {
		return err
	}
	if errors.Is(err, ErrStateNotFound) {
		state = State{Key: key}
	}

	state.LastStatus = res.StatusCode
	state.UpdatedAt = now

	_, hasRemaining := parseHeaderInt(res.Headers, "x-ratelimit-remaining")
	if limit, ok := parseHeaderInt(res.Headers, "x-ratelimit-limit"); ok {
		state.Limit = limit
	}
	if remaining, ok := parseHeaderInt(res.Headers, "x-ratelimit-remaining"); ok {
		state.Remaining = remaining
	}
	hasResetAt := false
	if resetAt, ok := parseResetAt(res.Headers, now); ok {
		state.ResetAt = &resetAt
		hasResetAt = true
	}

	retryAfter, hasRetryAfter := parseRetryAfter(res)
	if hasRetryAfter {
		state.RetryAfter = &retryAfter
	} else {
		state.RetryAfter = nil
	}

	if isThrottledResponse(res.StatusCode, state.Remaining, hasRemaining, hasResetAt, hasRetryAfter) {
		delay := retryAfter
		if !hasRetryAfter {
			delay = p.retryHint()
		}
		until := now.Add(delay)
		state.ThrottledUntil = &until
	} else {
		state.ThrottledUntil = nil
	}

	return p.Store.Upsert(ctx, state)
}

func (p *HeaderPolicy) now() time.Time {
	if p != nil && p.Now != nil {
		return p.Now().UTC()
	}
	return time.Now().UTC()
}

func (p *HeaderPolicy) retryHint() time.Duration {
	if p != nil && p.DefaultRetryHint > 0 {
		return p.DefaultRetryHint
	}
	return 5 * time.Second
}

func isThrottledResponse(
	statusCode int,
	remaining int,
	hasRemaining bool,
	hasResetAt bool,
	hasRetryAfter bool,
) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	if statusCode >= http.StatusInternalServerError {
		return false
	}
	return remaining == 0 && (hasRemaining || hasResetAt || hasRetryAfter)
}

func parseRetryAfter(res core.ProviderResponseMeta) (time.Duration, bool) {
	if res.RetryAfter != nil && *res.RetryAfter > 0 {
		return *res.RetryAfter, true
	}
	raw := headerValue(res.Headers, "retry-after")
	if raw == "" {
		return 0, false
	}
	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		if seconds <= 0 {
			return 0, false
		}
		return time.Duration(seconds * float64(time.Second)), true
	}
	return 0, false
}

func parseHeaderInt(headers map[string]string, key string) (int, bool) {
	value := headerValue(headers, key)
	if value == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// parseResetAt accepts either the absolute unix X-RateLimit-Reset or the
// relative X-RateLimit-Reset-After seconds form, the latter winning when
// both are present.
func parseResetAt(headers map[string]string, now time.Time) (time.Time, bool) {
	if raw := headerValue(headers, "x-ratelimit-reset-after"); raw != "" {
		if seconds, err := strconv.ParseFloat(raw, 64); err == nil && seconds > 0 {
			return now.Add(time.Duration(seconds * float64(time.Second))), true
		}
	}
	raw := headerValue(headers, "x-ratelimit-reset")
	if raw == "" {
		return time.Time{}, false
	}
	unix, err := strconv.ParseFloat(raw, 64)
	if err != nil || unix <= 0 {
		return time.Time{}, false
	}
	seconds := int64(unix)
	nanos := int64((unix - float64(seconds)) * float64(time.Second))
	return time.Unix(seconds, nanos).UTC(), true
}

func headerValue(headers map[string]string, key string) string {
	if len(headers) == 0 {
		return ""
	}
	for existing, value := range headers {
		if strings.EqualFold(strings.TrimSpace(existing), strings.TrimSpace(key)) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func normalizeKey(key core.RateLimitKey) core.RateLimitKey {
	return core.RateLimitKey{
		Method: strings.TrimSpace(strings.ToUpper(key.Method)),
		Bucket: strings.TrimSpace(key.Bucket),
	}
}

type MemoryStateStore struct {
	mu    sync.RWMutex
	items map[string]State
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{items: map[string]State{}}
}

func (s *MemoryStateStore) Get(_ context.Context, key core.RateLimitKey) (State, error) {
	if s == nil {
		return State{}, fmt.Errorf("ratelimit: state store is nil")
	}
	normalized := normalizeKey(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.items[stateKey(normalized)]
	if !ok {
		return State{}, ErrStateNotFound
	}
	return state, nil
}

func (s *MemoryStateStore) Upsert(_ context.Context, state State) error {
	if s == nil {
		return fmt.Errorf("ratelimit: state store is nil")
	}
	state.Key = normalizeKey(state.Key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[stateKey(state.Key)] = state
	return nil
}

func stateKey(key core.RateLimitKey) string {
	return key.Method + "|" + key.Bucket
}

var _ core.RateLimitPolicy = (*HeaderPolicy)(nil)
