package core

import (
	"context"
	"net/http"
	"time"

	glog "github.com/goliatone/go-logger/glog"
)

// HTTPDoer is the transport seam used by the dispatcher so tests can
// substitute a stub client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportRequest describes one outbound provider call. Query values are
// only forwarded for GET requests; Body only for mutating verbs.
type TransportRequest struct {
	Method      string
	Path        string
	AccessToken string
	Headers     map[string]string
	Query       map[string]string
	Body        []byte
	Metadata    map[string]any
	Timeout     time.Duration
}

type TransportResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Metadata   map[string]any
}

// Dispatcher is the single chokepoint for provider-bound HTTP calls. It is
// stateless apart from its configured base URL; credential ordering across
// concurrent calls is the caller's responsibility.
type Dispatcher interface {
	Do(ctx context.Context, req TransportRequest) (TransportResponse, error)
}

// RateLimitPolicy observes provider responses and can fail a call before
// dispatch while a known throttle window is open. It never schedules retries.
type RateLimitPolicy interface {
	BeforeCall(ctx context.Context, key RateLimitKey) error
	AfterCall(ctx context.Context, key RateLimitKey, res ProviderResponseMeta) error
}

type RateLimitKey struct {
	Method string
	Bucket string
}

type ProviderResponseMeta struct {
	StatusCode int
	Headers    map[string]string
	RetryAfter *time.Duration
	Metadata   map[string]any
}

type MetricsRecorder interface {
	IncCounter(ctx context.Context, name string, value int64, tags map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, tags map[string]string)
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
