package identity

import (
	"fmt"

	"github.com/goliatone/go-discord-oauth/core"
)

const DefaultCDNBaseURL = "https://cdn.discordapp.com"

// ImageFormats holds one CDN asset rendered in every delivery format.
type ImageFormats struct {
	JPG  string `json:"jpg"`
	PNG  string `json:"png"`
	WebP string `json:"webp"`
	GIF  string `json:"gif"`
}

// AvatarURL builds the CDN URL set for a user avatar. The user id must
// classify as a snowflake.
func AvatarURL(userID, imageHash string) (ImageFormats, error) {
	if tag := core.Classify(userID); tag != core.TagSnowflake {
		return ImageFormats{}, core.NewTypeMismatchError("user id", core.TagSnowflake, tag)
	}
	return formatsFor("avatars", userID, imageHash), nil
}

// GuildIconURL builds the CDN URL set for a guild icon. The guild id must
// classify as a snowflake.
func GuildIconURL(guildID, imageHash string) (ImageFormats, error) {
	if tag := core.Classify(guildID); tag != core.TagSnowflake {
		return ImageFormats{}, core.NewTypeMismatchError("guild id", core.TagSnowflake, tag)
	}
	return formatsFor("icons", guildID, imageHash), nil
}

func formatsFor(kind, id, imageHash string) ImageFormats {
	base := fmt.Sprintf("%s/%s/%s/%s", DefaultCDNBaseURL, kind, id, imageHash)
	return ImageFormats{
		JPG:  base + ".jpg",
		PNG:  base + ".png",
		WebP: base + ".webp",
		GIF:  base + ".gif",
	}
}
