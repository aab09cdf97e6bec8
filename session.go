package discordoauth

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-discord-oauth/core"
)

// Stage is the session's implicit authorization stage, derived from the
// token fields rather than stored.
type Stage string

const (
	StageUnauthorized Stage = "unauthorized"
	StageAuthorized   Stage = "authorized"
)

// Session owns the application credentials and the single authorized
// identity's tokens. Token fields are not synchronized internally: callers
// racing a setter or revocation against an in-flight fetch must serialize
// access themselves, typically one Session per logical request.
type Session struct {
	config     core.Config
	dispatcher core.Dispatcher
	logger     core.Logger
	metrics    core.MetricsRecorder

	accessToken  string
	refreshToken string
}

// New resolves configuration through the defaults/config/runtime layers and
// builds a Session. The runtime Config must carry client id, client secret,
// and redirect URI; the bot token stays optional until a privileged call.
func New(runtime core.Config, options ...Option) (*Session, error) {
	builder := defaultSessionBuilder(runtime)
	for _, option := range options {
		if option == nil {
			continue
		}
		option(&builder)
	}

	defaults := core.DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryOperation, "discordoauth: load config")
	}
	resolved, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "discordoauth: resolve config").
			WithTextCode(core.AuthErrorBadRequest)
	}

	dispatcher := builder.dispatcher
	if dispatcher == nil {
		dispatcher = builder.buildDispatcher(resolved)
	}

	return &Session{
		config:     resolved,
		dispatcher: dispatcher,
		logger:     builder.logger,
		metrics:    builder.metrics,
	}, nil
}

// Stage reports the implicit authorization stage.
func (s *Session) Stage() Stage {
	if s == nil || s.accessToken == "" {
		return StageUnauthorized
	}
	return StageAuthorized
}

// GenerateAuthorizationLink builds the browser-facing authorization URL for
// the code grant. An empty state generates a fresh random value; there is no
// fixed fallback.
func (s *Session) GenerateAuthorizationLink(opts core.LinkOptions) (core.AuthorizationLink, error) {
	if s == nil {
		return core.AuthorizationLink{}, core.NewInternalError("discordoauth: session is nil")
	}

	state := opts.State
	if state == "" {
		state = uuid.NewString()
	}
	if tag := core.Classify(state); tag != core.TagString {
		return core.AuthorizationLink{}, core.NewTypeMismatchError("state", core.TagString, tag)
	}

	values := url.Values{}
	values.Set("client_id", s.config.ClientID)
	values.Set("redirect_uri", s.config.RedirectURI)
	values.Set("response_type", "code")
	values.Set("scope", strings.Join(opts.Scopes, " "))
	values.Set("state", state)

	// Scope separators must encode as %20, not the form-style plus.
	encoded := strings.ReplaceAll(values.Encode(), "+", "%20")

	return core.AuthorizationLink{
		URL:   s.config.Endpoints.AuthorizeURL + "?" + encoded,
		State: state,
	}, nil
}

// ExchangeCodeForTokens trades an authorization code for a token pair. The
// pair is returned, not stored: callers persist it first and then commit it
// with SetAccessToken/SetRefreshToken.
func (s *Session) ExchangeCodeForTokens(ctx context.Context, code string) (core.TokenPair, error) {
	if s == nil {
		return core.TokenPair{}, core.NewInternalError("discordoauth: session is nil")
	}
	if tag := core.Classify(code); tag != core.TagString {
		return core.TokenPair{}, core.NewTypeMismatchError("code", core.TagString, tag)
	}

	form := url.Values{}
	form.Set("client_id", s.config.ClientID)
	form.Set("client_secret", s.config.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", s.config.RedirectURI)

	startedAt := time.Now().UTC()
	// The token endpoint is the one unauthenticated call: credentials ride
	// in the form body, not in a bearer header.
	res, err := s.dispatcher.Do(ctx, core.TransportRequest{
		Method:  "POST",
		Path:    "/oauth2/token",
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		Body:    []byte(form.Encode()),
	})
	s.observeOperation(ctx, startedAt, "token_exchange", err, map[string]any{"path": "/oauth2/token"})
	if err != nil {
		return core.TokenPair{}, err
	}

	pair := core.TokenPair{}
	if err := json.Unmarshal(res.Body, &pair); err != nil {
		return core.TokenPair{}, goerrors.Wrap(err, goerrors.CategoryExternal, "discordoauth: decode token response").
			WithTextCode(core.AuthErrorProviderFailure)
	}
	return pair, nil
}

// SetAccessToken commits an access token to the live session. No validation
// is applied; the trust boundary is the caller's.
func (s *Session) SetAccessToken(token string) {
	if s == nil {
		return
	}
	s.accessToken = token
}

// SetRefreshToken commits a refresh token to the live session.
func (s *Session) SetRefreshToken(token string) {
	if s == nil {
		return
	}
	s.refreshToken = token
}

func (s *Session) AccessToken() string {
	if s == nil {
		return ""
	}
	return s.accessToken
}

func (s *Session) RefreshToken() string {
	if s == nil {
		return ""
	}
	return s.refreshToken
}

// RevokeToken revokes the session's credentials at the provider. Both
// tokens must be present; revocation sends the refresh token and clears
// both fields together on success, or neither on failure.
func (s *Session) RevokeToken(ctx context.Context) error {
	if s == nil {
		return core.NewInternalError("discordoauth: session is nil")
	}
	if s.accessToken == "" || s.refreshToken == "" {
		return core.NewMissingCredentialsError("discordoauth: revocation requires both an access and a refresh token")
	}

	form := url.Values{}
	form.Set("client_id", s.config.ClientID)
	form.Set("client_secret", s.config.ClientSecret)
	form.Set("token", s.refreshToken)

	startedAt := time.Now().UTC()
	_, err := s.dispatcher.Do(ctx, core.TransportRequest{
		Method:  "POST",
		Path:    "/oauth2/token/revoke",
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		Body:    []byte(form.Encode()),
	})
	s.observeOperation(ctx, startedAt, "token_revoke", err, map[string]any{"path": "/oauth2/token/revoke"})
	if err != nil {
		return err
	}

	s.accessToken = ""
	s.refreshToken = ""
	return nil
}
