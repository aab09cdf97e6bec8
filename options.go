package discordoauth

import (
	"net/http"
	"time"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-discord-oauth/core"
	"github.com/goliatone/go-discord-oauth/ratelimit"
	"github.com/goliatone/go-discord-oauth/transport"
)

// Option customizes session construction.
type Option func(*sessionBuilder)

type sessionBuilder struct {
	runtimeConfig   core.Config
	loggerProvider  core.LoggerProvider
	logger          core.Logger
	metrics         core.MetricsRecorder
	configProvider  core.ConfigProvider
	optionsResolver core.OptionsResolver
	dispatcher      core.Dispatcher
	httpClient      core.HTTPDoer
	rateLimits      core.RateLimitPolicy
}

func defaultSessionBuilder(runtime core.Config) sessionBuilder {
	loggerProvider, logger := glog.Resolve("discord-oauth", nil, nil)
	return sessionBuilder{
		runtimeConfig:   runtime,
		loggerProvider:  loggerProvider,
		logger:          logger,
		metrics:         core.NopMetricsRecorder{},
		configProvider:  core.NewCfgxConfigProvider(nil),
		optionsResolver: core.GoOptionsResolver{},
		rateLimits:      ratelimit.NewHeaderPolicy(ratelimit.NewMemoryStateStore()),
	}
}

func (b sessionBuilder) buildDispatcher(cfg core.Config) core.Dispatcher {
	client := b.httpClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	dispatcher := transport.NewDispatcher(cfg.Endpoints.BaseURL, client)
	dispatcher.RateLimits = b.rateLimits
	return dispatcher
}

// WithLogger overrides the session logger.
func WithLogger(logger core.Logger) Option {
	return func(b *sessionBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithLoggerProvider overrides the logger provider used for named loggers.
func WithLoggerProvider(provider core.LoggerProvider) Option {
	return func(b *sessionBuilder) {
		if provider == nil {
			return
		}
		b.loggerProvider = provider
		b.logger = provider.GetLogger("discord-oauth")
	}
}

// WithMetricsRecorder overrides the metrics sink.
func WithMetricsRecorder(metrics core.MetricsRecorder) Option {
	return func(b *sessionBuilder) {
		if metrics != nil {
			b.metrics = metrics
		}
	}
}

// WithConfigProvider overrides how layered file/env configuration loads.
func WithConfigProvider(provider core.ConfigProvider) Option {
	return func(b *sessionBuilder) {
		if provider != nil {
			b.configProvider = provider
		}
	}
}

// WithOptionsResolver overrides the defaults/config/runtime merge.
func WithOptionsResolver(resolver core.OptionsResolver) Option {
	return func(b *sessionBuilder) {
		if resolver != nil {
			b.optionsResolver = resolver
		}
	}
}

// WithDispatcher injects a fully built dispatcher, bypassing the default
// transport assembly. Used by tests and by callers sharing a transport.
func WithDispatcher(dispatcher core.Dispatcher) Option {
	return func(b *sessionBuilder) {
		if dispatcher != nil {
			b.dispatcher = dispatcher
		}
	}
}

// WithHTTPClient overrides the HTTP client the default dispatcher wraps.
func WithHTTPClient(client core.HTTPDoer) Option {
	return func(b *sessionBuilder) {
		if client != nil {
			b.httpClient = client
		}
	}
}

// WithRateLimitPolicy overrides the default header-driven limiter.
func WithRateLimitPolicy(policy core.RateLimitPolicy) Option {
	return func(b *sessionBuilder) {
		if policy != nil {
			b.rateLimits = policy
		}
	}
}
