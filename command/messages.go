package command

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-discord-oauth/core"
)

const (
	TypeExchangeCode = "discord.command.token.exchange"
	TypeCommitTokens = "discord.command.token.commit"
	TypeRevokeToken  = "discord.command.token.revoke"
	TypeJoinGuild    = "discord.command.guild.join"
)

type ExchangeCodeMessage struct {
	Code string
}

func (ExchangeCodeMessage) Type() string { return TypeExchangeCode }

func (m ExchangeCodeMessage) Validate() error {
	if strings.TrimSpace(m.Code) == "" {
		return fmt.Errorf("command: authorization code is required")
	}
	return nil
}

// CommitTokensMessage installs an exchanged token pair on the session. Either
// token may be empty; committing an empty value clears that slot.
type CommitTokensMessage struct {
	Tokens core.TokenPair
}

func (CommitTokensMessage) Type() string { return TypeCommitTokens }

func (m CommitTokensMessage) Validate() error {
	if strings.TrimSpace(m.Tokens.AccessToken) == "" && strings.TrimSpace(m.Tokens.RefreshToken) == "" {
		return fmt.Errorf("command: at least one token is required")
	}
	return nil
}

type RevokeTokenMessage struct{}

func (RevokeTokenMessage) Type() string { return TypeRevokeToken }

func (RevokeTokenMessage) Validate() error { return nil }

type JoinGuildMessage struct {
	Options core.JoinGuildOptions
}

func (JoinGuildMessage) Type() string { return TypeJoinGuild }

func (m JoinGuildMessage) Validate() error {
	if strings.TrimSpace(m.Options.GuildID) == "" {
		return fmt.Errorf("command: guild id is required")
	}
	if strings.TrimSpace(m.Options.UserID) == "" {
		return fmt.Errorf("command: user id is required")
	}
	return nil
}
