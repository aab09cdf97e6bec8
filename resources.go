package discordoauth

import (
	"context"
	"encoding/json"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-discord-oauth/core"
	"github.com/goliatone/go-discord-oauth/identity"
)

// GetMyInfo fetches the authorized user's profile.
func (s *Session) GetMyInfo(ctx context.Context) (core.User, error) {
	user := core.User{}
	if err := s.getResource(ctx, "/users/@me", "user_info", &user); err != nil {
		return core.User{}, err
	}
	return user, nil
}

// GetMyConnections fetches the authorized user's linked external accounts.
func (s *Session) GetMyConnections(ctx context.Context) ([]core.Connection, error) {
	connections := []core.Connection{}
	if err := s.getResource(ctx, "/users/@me/connections", "user_connections", &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

// GetGuilds fetches the guilds the authorized user belongs to.
func (s *Session) GetGuilds(ctx context.Context) ([]core.Guild, error) {
	guilds := []core.Guild{}
	if err := s.getResource(ctx, "/users/@me/guilds", "user_guilds", &guilds); err != nil {
		return nil, err
	}
	return guilds, nil
}

// GetMyInfoFromGuild fetches the authorized user's membership in one guild.
// The guild id must classify as a snowflake.
func (s *Session) GetMyInfoFromGuild(ctx context.Context, guildID string) (core.GuildMember, error) {
	if s == nil {
		return core.GuildMember{}, core.NewInternalError("discordoauth: session is nil")
	}
	if tag := core.Classify(guildID); tag != core.TagSnowflake {
		return core.GuildMember{}, core.NewTypeMismatchError("guild_id", core.TagSnowflake, tag)
	}
	member := core.GuildMember{}
	if err := s.getResource(ctx, "/users/@me/guilds/"+guildID+"/member", "guild_member", &member); err != nil {
		return core.GuildMember{}, err
	}
	return member, nil
}

// GetMyUsername is a projection over GetMyInfo.
func (s *Session) GetMyUsername(ctx context.Context) (string, error) {
	user, err := s.GetMyInfo(ctx)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// GetMyDisplayName prefers the user's global display name, falling back to
// the username.
func (s *Session) GetMyDisplayName(ctx context.Context) (string, error) {
	user, err := s.GetMyInfo(ctx)
	if err != nil {
		return "", err
	}
	return identity.DisplayName(user), nil
}

// GetMyEmail is a projection over GetMyInfo. Requires the email scope;
// without it the provider omits the field and this returns "".
func (s *Session) GetMyEmail(ctx context.Context) (string, error) {
	user, err := s.GetMyInfo(ctx)
	if err != nil {
		return "", err
	}
	return identity.Email(user), nil
}

// JoinGuild adds the authorized user to a guild using the application's bot
// credential. Both ids must classify as snowflakes, and any roles must form
// a homogeneous snowflake array.
func (s *Session) JoinGuild(ctx context.Context, opts core.JoinGuildOptions) error {
	if s == nil {
		return core.NewInternalError("discordoauth: session is nil")
	}
	if tag := core.Classify(opts.GuildID); tag != core.TagSnowflake {
		return core.NewTypeMismatchError("guild_id", core.TagSnowflake, tag)
	}
	if tag := core.Classify(opts.UserID); tag != core.TagSnowflake {
		return core.NewTypeMismatchError("user_id", core.TagSnowflake, tag)
	}
	if len(opts.Roles) > 0 {
		if tag := core.ClassifyArray(opts.Roles); tag != core.TagSnowflakeArray {
			return core.NewTypeMismatchError("roles", core.TagSnowflakeArray, tag)
		}
	}
	if s.config.BotToken == "" {
		return core.NewMissingCredentialsError("discordoauth: joining a guild requires a bot token")
	}
	if s.accessToken == "" {
		return core.NewMissingCredentialsError("discordoauth: joining a guild requires an access token")
	}

	payload, err := json.Marshal(map[string]any{
		"roles":        opts.Roles,
		"access_token": s.accessToken,
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "discordoauth: encode join payload")
	}

	path := "/guilds/" + opts.GuildID + "/members/" + opts.UserID
	startedAt := time.Now().UTC()
	_, err = s.dispatcher.Do(ctx, core.TransportRequest{
		Method: "PUT",
		Path:   path,
		Headers: map[string]string{
			"Authorization": "Bot " + s.config.BotToken,
			"Content-Type":  "application/json",
		},
		Body: payload,
	})
	s.observeOperation(ctx, startedAt, "guild_join", err, map[string]any{
		"guild_id": opts.GuildID,
		"user_id":  opts.UserID,
	})
	return err
}

// GetApplication fetches the application record using the bot credential.
func (s *Session) GetApplication(ctx context.Context) (core.Application, error) {
	if s == nil {
		return core.Application{}, core.NewInternalError("discordoauth: session is nil")
	}
	if s.config.BotToken == "" {
		return core.Application{}, core.NewMissingCredentialsError("discordoauth: reading the application requires a bot token")
	}

	startedAt := time.Now().UTC()
	res, err := s.dispatcher.Do(ctx, core.TransportRequest{
		Method:  "GET",
		Path:    "/oauth2/applications/@me",
		Headers: map[string]string{"Authorization": "Bot " + s.config.BotToken},
	})
	s.observeOperation(ctx, startedAt, "application_info", err, map[string]any{"path": "/oauth2/applications/@me"})
	if err != nil {
		return core.Application{}, err
	}

	app := core.Application{}
	if err := json.Unmarshal(res.Body, &app); err != nil {
		return core.Application{}, goerrors.Wrap(err, goerrors.CategoryExternal, "discordoauth: decode application response").
			WithTextCode(core.AuthErrorProviderFailure)
	}
	return app, nil
}

// getResource is the shared bearer-authenticated GET flow: dispatch, observe,
// decode into out.
func (s *Session) getResource(ctx context.Context, path, operation string, out any) error {
	if s == nil {
		return core.NewInternalError("discordoauth: session is nil")
	}

	startedAt := time.Now().UTC()
	res, err := s.dispatcher.Do(ctx, core.TransportRequest{
		Method:      "GET",
		Path:        path,
		AccessToken: s.accessToken,
	})
	s.observeOperation(ctx, startedAt, operation, err, map[string]any{"path": path})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(res.Body, out); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "discordoauth: decode "+operation+" response").
			WithTextCode(core.AuthErrorProviderFailure)
	}
	return nil
}
