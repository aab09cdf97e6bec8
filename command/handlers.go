package command

import (
	"context"

	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-discord-oauth/core"
)

// SessionService is the mutating surface of the session the commands drive.
type SessionService interface {
	ExchangeCodeForTokens(ctx context.Context, code string) (core.TokenPair, error)
	SetAccessToken(token string)
	SetRefreshToken(token string)
	RevokeToken(ctx context.Context) error
	JoinGuild(ctx context.Context, opts core.JoinGuildOptions) error
}

type ExchangeCodeCommand struct {
	service SessionService
}

func NewExchangeCodeCommand(service SessionService) *ExchangeCodeCommand {
	return &ExchangeCodeCommand{service: service}
}

func (c *ExchangeCodeCommand) Execute(ctx context.Context, msg ExchangeCodeMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: exchange service is required")
	}
	out, err := c.service.ExchangeCodeForTokens(ctx, msg.Code)
	if err != nil {
		return err
	}
	storeResult(ctx, out)
	return nil
}

type CommitTokensCommand struct {
	service SessionService
}

func NewCommitTokensCommand(service SessionService) *CommitTokensCommand {
	return &CommitTokensCommand{service: service}
}

func (c *CommitTokensCommand) Execute(ctx context.Context, msg CommitTokensMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: token service is required")
	}
	c.service.SetAccessToken(msg.Tokens.AccessToken)
	c.service.SetRefreshToken(msg.Tokens.RefreshToken)
	return nil
}

type RevokeTokenCommand struct {
	service SessionService
}

func NewRevokeTokenCommand(service SessionService) *RevokeTokenCommand {
	return &RevokeTokenCommand{service: service}
}

func (c *RevokeTokenCommand) Execute(ctx context.Context, _ RevokeTokenMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: revoke service is required")
	}
	return c.service.RevokeToken(ctx)
}

type JoinGuildCommand struct {
	service SessionService
}

func NewJoinGuildCommand(service SessionService) *JoinGuildCommand {
	return &JoinGuildCommand{service: service}
}

func (c *JoinGuildCommand) Execute(ctx context.Context, msg JoinGuildMessage) error {
	if c == nil || c.service == nil {
		return commandDependencyError("command: guild service is required")
	}
	return c.service.JoinGuild(ctx, msg.Options)
}

func storeResult[T any](ctx context.Context, value T) {
	collector := gocmd.ResultFromContext[T](ctx)
	if collector == nil {
		return
	}
	collector.Store(value)
}
