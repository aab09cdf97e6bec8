package core

import (
	"fmt"
	"strings"
)

const (
	// DefaultBaseURL is the provider REST base every dispatcher path is
	// resolved against. It is configuration, not a process-wide variable,
	// so test doubles swap it per instance.
	DefaultBaseURL = "https://discord.com/api/v10"

	// DefaultAuthorizeURL is the browser-facing authorization endpoint.
	DefaultAuthorizeURL = "https://discord.com/oauth2/authorize"
)

type EndpointsConfig struct {
	BaseURL      string `koanf:"base_url" mapstructure:"base_url"`
	AuthorizeURL string `koanf:"authorize_url" mapstructure:"authorize_url"`
}

type Config struct {
	ClientID     string          `koanf:"client_id" mapstructure:"client_id"`
	ClientSecret string          `koanf:"client_secret" mapstructure:"client_secret"`
	RedirectURI  string          `koanf:"redirect_uri" mapstructure:"redirect_uri"`
	BotToken     string          `koanf:"bot_token" mapstructure:"bot_token"`
	Endpoints    EndpointsConfig `koanf:"endpoints" mapstructure:"endpoints"`
}

func DefaultConfig() Config {
	return Config{
		Endpoints: EndpointsConfig{
			BaseURL:      DefaultBaseURL,
			AuthorizeURL: DefaultAuthorizeURL,
		},
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("core: client_id is required")
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		return fmt.Errorf("core: client_secret is required")
	}
	if strings.TrimSpace(c.RedirectURI) == "" {
		return fmt.Errorf("core: redirect_uri is required")
	}
	if strings.TrimSpace(c.Endpoints.BaseURL) == "" {
		return fmt.Errorf("core: endpoints.base_url is required")
	}
	if strings.TrimSpace(c.Endpoints.AuthorizeURL) == "" {
		return fmt.Errorf("core: endpoints.authorize_url is required")
	}
	return nil
}
