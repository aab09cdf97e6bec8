package command

import (
	"context"
	"testing"

	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-discord-oauth/core"
)

type stubSessionService struct {
	exchangeFn    func(ctx context.Context, code string) (core.TokenPair, error)
	revokeFn      func(ctx context.Context) error
	joinGuildFn   func(ctx context.Context, opts core.JoinGuildOptions) error
	accessTokens  []string
	refreshTokens []string
}

func (s *stubSessionService) ExchangeCodeForTokens(ctx context.Context, code string) (core.TokenPair, error) {
	if s.exchangeFn != nil {
		return s.exchangeFn(ctx, code)
	}
	return core.TokenPair{}, nil
}

func (s *stubSessionService) SetAccessToken(token string) {
	s.accessTokens = append(s.accessTokens, token)
}

func (s *stubSessionService) SetRefreshToken(token string) {
	s.refreshTokens = append(s.refreshTokens, token)
}

func (s *stubSessionService) RevokeToken(ctx context.Context) error {
	if s.revokeFn != nil {
		return s.revokeFn(ctx)
	}
	return nil
}

func (s *stubSessionService) JoinGuild(ctx context.Context, opts core.JoinGuildOptions) error {
	if s.joinGuildFn != nil {
		return s.joinGuildFn(ctx, opts)
	}
	return nil
}

func TestExchangeCodeCommand_DelegatesAndStoresResult(t *testing.T) {
	expected := core.TokenPair{AccessToken: "access_abc", RefreshToken: "refresh_def"}
	called := false

	svc := &stubSessionService{
		exchangeFn: func(_ context.Context, code string) (core.TokenPair, error) {
			called = true
			if code != "auth_code_1" {
				t.Fatalf("expected code auth_code_1, got %q", code)
			}
			return expected, nil
		},
	}

	cmd := NewExchangeCodeCommand(svc)
	collector := gocmd.NewResult[core.TokenPair]()
	ctx := gocmd.ContextWithResult(context.Background(), collector)

	if err := cmd.Execute(ctx, ExchangeCodeMessage{Code: "auth_code_1"}); err != nil {
		t.Fatalf("execute exchange: %v", err)
	}
	if !called {
		t.Fatalf("expected exchange invocation")
	}
	result, ok := collector.Load()
	if !ok {
		t.Fatalf("expected result to be stored")
	}
	if result.AccessToken != expected.AccessToken || result.RefreshToken != expected.RefreshToken {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestCommitTokensCommand_SetsBothTokens(t *testing.T) {
	svc := &stubSessionService{}
	cmd := NewCommitTokensCommand(svc)

	msg := CommitTokensMessage{Tokens: core.TokenPair{AccessToken: "access_abc", RefreshToken: "refresh_def"}}
	if err := cmd.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute commit: %v", err)
	}
	if len(svc.accessTokens) != 1 || svc.accessTokens[0] != "access_abc" {
		t.Fatalf("unexpected access commits %#v", svc.accessTokens)
	}
	if len(svc.refreshTokens) != 1 || svc.refreshTokens[0] != "refresh_def" {
		t.Fatalf("unexpected refresh commits %#v", svc.refreshTokens)
	}
}

func TestRevokeTokenCommand_Delegates(t *testing.T) {
	called := false
	svc := &stubSessionService{
		revokeFn: func(context.Context) error {
			called = true
			return nil
		},
	}
	cmd := NewRevokeTokenCommand(svc)
	if err := cmd.Execute(context.Background(), RevokeTokenMessage{}); err != nil {
		t.Fatalf("execute revoke: %v", err)
	}
	if !called {
		t.Fatalf("expected revoke invocation")
	}
}

func TestJoinGuildCommand_Delegates(t *testing.T) {
	called := false
	svc := &stubSessionService{
		joinGuildFn: func(_ context.Context, opts core.JoinGuildOptions) error {
			called = true
			if opts.GuildID != "123456789012345678" {
				t.Fatalf("unexpected guild id %q", opts.GuildID)
			}
			return nil
		},
	}
	cmd := NewJoinGuildCommand(svc)
	msg := JoinGuildMessage{Options: core.JoinGuildOptions{
		GuildID: "123456789012345678",
		UserID:  "876543210987654321",
	}}
	if err := cmd.Execute(context.Background(), msg); err != nil {
		t.Fatalf("execute join guild: %v", err)
	}
	if !called {
		t.Fatalf("expected join guild invocation")
	}
}

func TestCommands_NilServiceFails(t *testing.T) {
	var exchange *ExchangeCodeCommand
	if err := exchange.Execute(context.Background(), ExchangeCodeMessage{Code: "x"}); err == nil {
		t.Fatalf("expected nil command to fail")
	}
	if err := NewRevokeTokenCommand(nil).Execute(context.Background(), RevokeTokenMessage{}); err == nil {
		t.Fatalf("expected nil service to fail")
	}
}

func TestMessageValidation(t *testing.T) {
	if err := (ExchangeCodeMessage{}).Validate(); err == nil {
		t.Fatalf("expected blank code to fail")
	}
	if err := (ExchangeCodeMessage{Code: "auth_code_1"}).Validate(); err != nil {
		t.Fatalf("expected valid code, got %v", err)
	}

	if err := (CommitTokensMessage{}).Validate(); err == nil {
		t.Fatalf("expected empty pair to fail")
	}
	if err := (CommitTokensMessage{Tokens: core.TokenPair{AccessToken: "a"}}).Validate(); err != nil {
		t.Fatalf("expected partial pair to pass, got %v", err)
	}

	if err := (JoinGuildMessage{}).Validate(); err == nil {
		t.Fatalf("expected blank guild id to fail")
	}
	valid := JoinGuildMessage{Options: core.JoinGuildOptions{GuildID: "g", UserID: "u"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}
