package command

import gocmd "github.com/goliatone/go-command"

var (
	_ gocmd.Commander[ExchangeCodeMessage] = (*ExchangeCodeCommand)(nil)
	_ gocmd.Commander[CommitTokensMessage] = (*CommitTokensCommand)(nil)
	_ gocmd.Commander[RevokeTokenMessage]  = (*RevokeTokenCommand)(nil)
	_ gocmd.Commander[JoinGuildMessage]    = (*JoinGuildCommand)(nil)
)
