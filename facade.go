package discordoauth

import (
	"fmt"

	discordcommand "github.com/goliatone/go-discord-oauth/command"
	discordquery "github.com/goliatone/go-discord-oauth/query"
)

// CommandQueryService is the combined surface a session exposes to the
// command and query handlers.
type CommandQueryService interface {
	discordcommand.SessionService
	discordquery.SessionReader
}

type Commands struct {
	ExchangeCode *discordcommand.ExchangeCodeCommand
	CommitTokens *discordcommand.CommitTokensCommand
	RevokeToken  *discordcommand.RevokeTokenCommand
	JoinGuild    *discordcommand.JoinGuildCommand
}

type Queries struct {
	AuthorizationLink *discordquery.AuthorizationLinkQuery
	MyInfo            *discordquery.MyInfoQuery
	MyConnections     *discordquery.MyConnectionsQuery
	Guilds            *discordquery.GuildsQuery
	GuildMember       *discordquery.GuildMemberQuery
	Application       *discordquery.ApplicationQuery
}

// Facade wires one session into dispatchable command and query handlers.
type Facade struct {
	service  CommandQueryService
	commands Commands
	queries  Queries
}

func NewFacade(service CommandQueryService) (*Facade, error) {
	if service == nil {
		return nil, fmt.Errorf("discordoauth: command/query service is required")
	}

	facade := &Facade{service: service}
	facade.commands = Commands{
		ExchangeCode: discordcommand.NewExchangeCodeCommand(service),
		CommitTokens: discordcommand.NewCommitTokensCommand(service),
		RevokeToken:  discordcommand.NewRevokeTokenCommand(service),
		JoinGuild:    discordcommand.NewJoinGuildCommand(service),
	}
	facade.queries = Queries{
		AuthorizationLink: discordquery.NewAuthorizationLinkQuery(service),
		MyInfo:            discordquery.NewMyInfoQuery(service),
		MyConnections:     discordquery.NewMyConnectionsQuery(service),
		Guilds:            discordquery.NewGuildsQuery(service),
		GuildMember:       discordquery.NewGuildMemberQuery(service),
		Application:       discordquery.NewApplicationQuery(service),
	}

	return facade, nil
}

func (f *Facade) Commands() Commands {
	if f == nil {
		return Commands{}
	}
	return f.commands
}

func (f *Facade) Queries() Queries {
	if f == nil {
		return Queries{}
	}
	return f.queries
}

func (f *Facade) Service() CommandQueryService {
	if f == nil {
		return nil
	}
	return f.service
}

var _ CommandQueryService = (*Session)(nil)
