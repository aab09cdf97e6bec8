package query

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-discord-oauth/core"
)

const (
	TypeAuthorizationLink = "discord.query.authorization_link"
	TypeMyInfo            = "discord.query.user.info"
	TypeMyConnections     = "discord.query.user.connections"
	TypeGuilds            = "discord.query.user.guilds"
	TypeGuildMember       = "discord.query.guild.member"
	TypeApplication       = "discord.query.application"
)

type AuthorizationLinkMessage struct {
	Options core.LinkOptions
}

func (AuthorizationLinkMessage) Type() string { return TypeAuthorizationLink }

func (m AuthorizationLinkMessage) Validate() error {
	if len(m.Options.Scopes) == 0 {
		return fmt.Errorf("query: at least one scope is required")
	}
	for _, scope := range m.Options.Scopes {
		if strings.TrimSpace(scope) == "" {
			return fmt.Errorf("query: scopes must not be blank")
		}
	}
	return nil
}

type MyInfoMessage struct{}

func (MyInfoMessage) Type() string { return TypeMyInfo }

func (MyInfoMessage) Validate() error { return nil }

type MyConnectionsMessage struct{}

func (MyConnectionsMessage) Type() string { return TypeMyConnections }

func (MyConnectionsMessage) Validate() error { return nil }

type GuildsMessage struct{}

func (GuildsMessage) Type() string { return TypeGuilds }

func (GuildsMessage) Validate() error { return nil }

type GuildMemberMessage struct {
	GuildID string
}

func (GuildMemberMessage) Type() string { return TypeGuildMember }

func (m GuildMemberMessage) Validate() error {
	if strings.TrimSpace(m.GuildID) == "" {
		return fmt.Errorf("query: guild id is required")
	}
	return nil
}

type ApplicationMessage struct{}

func (ApplicationMessage) Type() string { return TypeApplication }

func (ApplicationMessage) Validate() error { return nil }
