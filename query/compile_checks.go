package query

import (
	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-discord-oauth/core"
)

var (
	_ gocmd.Querier[AuthorizationLinkMessage, core.AuthorizationLink] = (*AuthorizationLinkQuery)(nil)
	_ gocmd.Querier[MyInfoMessage, core.User]                         = (*MyInfoQuery)(nil)
	_ gocmd.Querier[MyConnectionsMessage, []core.Connection]          = (*MyConnectionsQuery)(nil)
	_ gocmd.Querier[GuildsMessage, []core.Guild]                      = (*GuildsQuery)(nil)
	_ gocmd.Querier[GuildMemberMessage, core.GuildMember]             = (*GuildMemberQuery)(nil)
	_ gocmd.Querier[ApplicationMessage, core.Application]             = (*ApplicationQuery)(nil)
)
