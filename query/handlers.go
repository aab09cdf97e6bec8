package query

import (
	"context"

	"github.com/goliatone/go-discord-oauth/core"
)

// SessionReader is the read-only surface of the session the queries drive.
type SessionReader interface {
	GenerateAuthorizationLink(opts core.LinkOptions) (core.AuthorizationLink, error)
	GetMyInfo(ctx context.Context) (core.User, error)
	GetMyConnections(ctx context.Context) ([]core.Connection, error)
	GetGuilds(ctx context.Context) ([]core.Guild, error)
	GetMyInfoFromGuild(ctx context.Context, guildID string) (core.GuildMember, error)
	GetApplication(ctx context.Context) (core.Application, error)
}

type AuthorizationLinkQuery struct {
	reader SessionReader
}

func NewAuthorizationLinkQuery(reader SessionReader) *AuthorizationLinkQuery {
	return &AuthorizationLinkQuery{reader: reader}
}

func (q *AuthorizationLinkQuery) Query(_ context.Context, msg AuthorizationLinkMessage) (core.AuthorizationLink, error) {
	if q == nil || q.reader == nil {
		return core.AuthorizationLink{}, queryDependencyError("query: session reader is required")
	}
	return q.reader.GenerateAuthorizationLink(msg.Options)
}

type MyInfoQuery struct {
	reader SessionReader
}

func NewMyInfoQuery(reader SessionReader) *MyInfoQuery {
	return &MyInfoQuery{reader: reader}
}

func (q *MyInfoQuery) Query(ctx context.Context, _ MyInfoMessage) (core.User, error) {
	if q == nil || q.reader == nil {
		return core.User{}, queryDependencyError("query: session reader is required")
	}
	return q.reader.GetMyInfo(ctx)
}

type MyConnectionsQuery struct {
	reader SessionReader
}

func NewMyConnectionsQuery(reader SessionReader) *MyConnectionsQuery {
	return &MyConnectionsQuery{reader: reader}
}

func (q *MyConnectionsQuery) Query(ctx context.Context, _ MyConnectionsMessage) ([]core.Connection, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: session reader is required")
	}
	return q.reader.GetMyConnections(ctx)
}

type GuildsQuery struct {
	reader SessionReader
}

func NewGuildsQuery(reader SessionReader) *GuildsQuery {
	return &GuildsQuery{reader: reader}
}

func (q *GuildsQuery) Query(ctx context.Context, _ GuildsMessage) ([]core.Guild, error) {
	if q == nil || q.reader == nil {
		return nil, queryDependencyError("query: session reader is required")
	}
	return q.reader.GetGuilds(ctx)
}

type GuildMemberQuery struct {
	reader SessionReader
}

func NewGuildMemberQuery(reader SessionReader) *GuildMemberQuery {
	return &GuildMemberQuery{reader: reader}
}

func (q *GuildMemberQuery) Query(ctx context.Context, msg GuildMemberMessage) (core.GuildMember, error) {
	if q == nil || q.reader == nil {
		return core.GuildMember{}, queryDependencyError("query: session reader is required")
	}
	return q.reader.GetMyInfoFromGuild(ctx, msg.GuildID)
}

type ApplicationQuery struct {
	reader SessionReader
}

func NewApplicationQuery(reader SessionReader) *ApplicationQuery {
	return &ApplicationQuery{reader: reader}
}

func (q *ApplicationQuery) Query(ctx context.Context, _ ApplicationMessage) (core.Application, error) {
	if q == nil || q.reader == nil {
		return core.Application{}, queryDependencyError("query: session reader is required")
	}
	return q.reader.GetApplication(ctx)
}
