package identity

import (
	"strings"

	"github.com/goliatone/go-discord-oauth/core"
)

// DisplayName prefers the user's global display name and falls back to the
// username.
func DisplayName(user core.User) string {
	if user.GlobalName != nil && strings.TrimSpace(*user.GlobalName) != "" {
		return strings.TrimSpace(*user.GlobalName)
	}
	return strings.TrimSpace(user.Username)
}

// Email returns the profile email when the identity was granted the email
// scope; empty otherwise.
func Email(user core.User) string {
	if user.Email == nil {
		return ""
	}
	return strings.TrimSpace(*user.Email)
}

// TotalGuildCount counts the guilds in a listing plus the user's implicit
// home guild.
func TotalGuildCount(guilds []core.Guild) int {
	return len(guilds) + 1
}
