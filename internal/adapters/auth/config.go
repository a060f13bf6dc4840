// Package auth exchanges a Microsoft sign-in for a game-service account.
package auth

import (
	"golang.org/x/oauth2"
)

const (
	DefaultClientID    = "9963c094-1077-4c84-bf98-dcf47483272b"
	DefaultListenAddr  = "127.0.0.1:8594"
	DefaultRedirectURL = "http://localhost:8594"

	DefaultAuthorizeURL = "https://login.live.com/oauth20_authorize.srf"
	DefaultTokenURL     = "https://login.live.com/oauth20_token.srf"
	DefaultXboxLiveURL  = "https://user.auth.xboxlive.com/user/authenticate"
	DefaultXSTSURL      = "https://xsts.auth.xboxlive.com/xsts/authorize"
	DefaultLoginURL     = "https://api.minecraftservices.com/authentication/login_with_xbox"
	DefaultProfileURL   = "https://api.minecraftservices.com/minecraft/profile"
)

var DefaultScopes = []string{"XboxLive.signin", "XboxLive.offline_access"}

// Config carries the client identity and every endpoint of the chain. It is
// built once at startup and handed to NewChain.
type Config struct {
	ClientID string
	Scopes   []string

	// ListenAddr is where the one-shot redirect listener binds.
	ListenAddr string
	// RedirectURL is sent to the identity provider. Empty derives it from
	// the bound listener.
	RedirectURL string

	AuthorizeURL string
	TokenURL     string
	XboxLiveURL  string
	XSTSURL      string
	LoginURL     string
	ProfileURL   string
}

func DefaultConfig() Config {
	return Config{
		ClientID:     DefaultClientID,
		Scopes:       append([]string(nil), DefaultScopes...),
		ListenAddr:   DefaultListenAddr,
		RedirectURL:  DefaultRedirectURL,
		AuthorizeURL: DefaultAuthorizeURL,
		TokenURL:     DefaultTokenURL,
		XboxLiveURL:  DefaultXboxLiveURL,
		XSTSURL:      DefaultXSTSURL,
		LoginURL:     DefaultLoginURL,
		ProfileURL:   DefaultProfileURL,
	}
}

func (c Config) oauth2(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID: c.ClientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.AuthorizeURL,
			TokenURL:  c.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: redirectURL,
		Scopes:      c.Scopes,
	}
}
