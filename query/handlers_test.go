package query

import (
	"context"
	"testing"

	"github.com/goliatone/go-discord-oauth/core"
)

type stubSessionReader struct {
	linkFn        func(opts core.LinkOptions) (core.AuthorizationLink, error)
	myInfoFn      func(ctx context.Context) (core.User, error)
	connectionsFn func(ctx context.Context) ([]core.Connection, error)
	guildsFn      func(ctx context.Context) ([]core.Guild, error)
	memberFn      func(ctx context.Context, guildID string) (core.GuildMember, error)
	applicationFn func(ctx context.Context) (core.Application, error)
}

func (s *stubSessionReader) GenerateAuthorizationLink(opts core.LinkOptions) (core.AuthorizationLink, error) {
	if s.linkFn != nil {
		return s.linkFn(opts)
	}
	return core.AuthorizationLink{}, nil
}

func (s *stubSessionReader) GetMyInfo(ctx context.Context) (core.User, error) {
	if s.myInfoFn != nil {
		return s.myInfoFn(ctx)
	}
	return core.User{}, nil
}

func (s *stubSessionReader) GetMyConnections(ctx context.Context) ([]core.Connection, error) {
	if s.connectionsFn != nil {
		return s.connectionsFn(ctx)
	}
	return nil, nil
}

func (s *stubSessionReader) GetGuilds(ctx context.Context) ([]core.Guild, error) {
	if s.guildsFn != nil {
		return s.guildsFn(ctx)
	}
	return nil, nil
}

func (s *stubSessionReader) GetMyInfoFromGuild(ctx context.Context, guildID string) (core.GuildMember, error) {
	if s.memberFn != nil {
		return s.memberFn(ctx, guildID)
	}
	return core.GuildMember{}, nil
}

func (s *stubSessionReader) GetApplication(ctx context.Context) (core.Application, error) {
	if s.applicationFn != nil {
		return s.applicationFn(ctx)
	}
	return core.Application{}, nil
}

func TestAuthorizationLinkQuery_Delegates(t *testing.T) {
	reader := &stubSessionReader{
		linkFn: func(opts core.LinkOptions) (core.AuthorizationLink, error) {
			if len(opts.Scopes) != 2 {
				t.Fatalf("unexpected scopes %#v", opts.Scopes)
			}
			return core.AuthorizationLink{URL: "https://example.com/authorize?state=xyz", State: "xyz"}, nil
		},
	}

	q := NewAuthorizationLinkQuery(reader)
	link, err := q.Query(context.Background(), AuthorizationLinkMessage{
		Options: core.LinkOptions{Scopes: []string{"identify", "email"}, State: "xyz"},
	})
	if err != nil {
		t.Fatalf("query link: %v", err)
	}
	if link.State != "xyz" {
		t.Fatalf("unexpected link %#v", link)
	}
}

func TestMyInfoQuery_Delegates(t *testing.T) {
	reader := &stubSessionReader{
		myInfoFn: func(context.Context) (core.User, error) {
			return core.User{ID: "123456789012345678", Username: "someone"}, nil
		},
	}

	q := NewMyInfoQuery(reader)
	user, err := q.Query(context.Background(), MyInfoMessage{})
	if err != nil {
		t.Fatalf("query my info: %v", err)
	}
	if user.Username != "someone" {
		t.Fatalf("unexpected user %#v", user)
	}
}

func TestGuildMemberQuery_ForwardsGuildID(t *testing.T) {
	reader := &stubSessionReader{
		memberFn: func(_ context.Context, guildID string) (core.GuildMember, error) {
			if guildID != "123456789012345678" {
				t.Fatalf("unexpected guild id %q", guildID)
			}
			return core.GuildMember{JoinedAt: "2026-01-01T00:00:00Z"}, nil
		},
	}

	q := NewGuildMemberQuery(reader)
	member, err := q.Query(context.Background(), GuildMemberMessage{GuildID: "123456789012345678"})
	if err != nil {
		t.Fatalf("query guild member: %v", err)
	}
	if member.JoinedAt == "" {
		t.Fatalf("unexpected member %#v", member)
	}
}

func TestQueries_NilReaderFails(t *testing.T) {
	var q *MyInfoQuery
	if _, err := q.Query(context.Background(), MyInfoMessage{}); err == nil {
		t.Fatalf("expected nil query to fail")
	}
	if _, err := NewGuildsQuery(nil).Query(context.Background(), GuildsMessage{}); err == nil {
		t.Fatalf("expected nil reader to fail")
	}
	if _, err := NewApplicationQuery(nil).Query(context.Background(), ApplicationMessage{}); err == nil {
		t.Fatalf("expected nil reader to fail")
	}
}

func TestQueryMessageValidation(t *testing.T) {
	if err := (AuthorizationLinkMessage{}).Validate(); err == nil {
		t.Fatalf("expected empty scopes to fail")
	}
	blank := AuthorizationLinkMessage{Options: core.LinkOptions{Scopes: []string{" "}}}
	if err := blank.Validate(); err == nil {
		t.Fatalf("expected blank scope to fail")
	}
	valid := AuthorizationLinkMessage{Options: core.LinkOptions{Scopes: []string{"identify"}}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}

	if err := (GuildMemberMessage{}).Validate(); err == nil {
		t.Fatalf("expected blank guild id to fail")
	}
	if err := (GuildMemberMessage{GuildID: "123456789012345678"}).Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}
