package core

// TokenPair is the result of an authorization-code exchange. The session
// never stores it implicitly; callers persist the pair and commit it with
// the token setters.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// User is the provider's current-user profile payload.
type User struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Discriminator string  `json:"discriminator"`
	GlobalName    *string `json:"global_name,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
	Bot           bool    `json:"bot,omitempty"`
	System        bool    `json:"system,omitempty"`
	MFAEnabled    bool    `json:"mfa_enabled,omitempty"`
	Banner        *string `json:"banner,omitempty"`
	AccentColor   *int    `json:"accent_color,omitempty"`
	Locale        *string `json:"locale,omitempty"`
	Verified      bool    `json:"verified,omitempty"`
	Email         *string `json:"email,omitempty"`
	Flags         int     `json:"flags,omitempty"`
	PremiumType   int     `json:"premium_type,omitempty"`
	PublicFlags   int     `json:"public_flags,omitempty"`
}

// Connection is a third-party account linked to the user.
type Connection struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Type               string `json:"type"`
	FriendSync         bool   `json:"friend_sync"`
	MetadataVisibility int    `json:"metadata_visibility"`
	ShowActivity       bool   `json:"show_activity"`
	TwoWayLink         bool   `json:"two_way_link"`
	Verified           bool   `json:"verified"`
	Visibility         int    `json:"visibility"`
}

// Guild is a partial guild object as returned by the current-user guild list.
type Guild struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        *string  `json:"icon,omitempty"`
	Owner       bool     `json:"owner,omitempty"`
	Permissions string   `json:"permissions,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// GuildMember is the current user's membership record in one guild.
type GuildMember struct {
	User     *User    `json:"user,omitempty"`
	Nick     *string  `json:"nick,omitempty"`
	Avatar   *string  `json:"avatar,omitempty"`
	Roles    []string `json:"roles"`
	JoinedAt string   `json:"joined_at"`
	Deaf     bool     `json:"deaf"`
	Mute     bool     `json:"mute"`
	Pending  bool     `json:"pending,omitempty"`
}

// Application is the self-metadata of the calling application.
type Application struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Icon                *string `json:"icon,omitempty"`
	Description         string  `json:"description"`
	BotPublic           bool    `json:"bot_public"`
	BotRequireCodeGrant bool    `json:"bot_require_code_grant"`
	Owner               *User   `json:"owner,omitempty"`
}

// AuthorizationLink is a generated browser-facing authorization URL. State
// echoes the caller-supplied anti-forgery value, or the freshly generated
// one when the caller left it empty.
type AuthorizationLink struct {
	URL   string
	State string
}

// LinkOptions parameterize authorization URL generation. An empty State is
// replaced with a freshly generated random value; there is no fixed default.
type LinkOptions struct {
	Scopes []string
	State  string
}

// JoinGuildOptions name the member-add target. GuildID and UserID must
// classify as snowflakes and Roles as a homogeneous snowflake array
// (an empty role list is allowed).
type JoinGuildOptions struct {
	GuildID string
	UserID  string
	Roles   []string
}
