package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/mcli/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	xboxTokenType      = "JWT"
	xboxLiveParty      = "http://auth.xboxlive.com"
	gameServicesParty  = "rp://api.minecraftservices.com/"
	xboxLiveAuthMethod = "RPS"
	xboxLiveSiteName   = "user.auth.xboxlive.com"
	xstsSandbox        = "RETAIL"
)

// XboxToken is an Xbox Live or XSTS token with the user hashes it was
// issued for.
type XboxToken struct {
	Token      string
	UserHashes []string
}

// UserHash returns the first user hash.
func (t XboxToken) UserHash() (string, error) {
	if len(t.UserHashes) == 0 {
		return "", domain.ErrNoUserHash
	}
	return t.UserHashes[0], nil
}

type Profile struct {
	ID   string
	Name string
}

// statusError reports a non-2xx answer from one of the identity services.
type statusError struct {
	method string
	url    string
	code   int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.method, e.url, e.code)
}

type xboxClient struct {
	http *resty.Client
	cfg  Config
}

func (c xboxClient) xboxLive(ctx context.Context, accessToken string) (XboxToken, error) {
	return c.authorize(ctx, c.cfg.XboxLiveURL, map[string]any{
		"RelyingParty": xboxLiveParty,
		"TokenType":    xboxTokenType,
		"Properties": map[string]any{
			"AuthMethod": xboxLiveAuthMethod,
			"SiteName":   xboxLiveSiteName,
			"RpsTicket":  "d=" + accessToken,
		},
	})
}

func (c xboxClient) xsts(ctx context.Context, xboxLiveToken string) (XboxToken, error) {
	return c.authorize(ctx, c.cfg.XSTSURL, map[string]any{
		"RelyingParty": gameServicesParty,
		"TokenType":    xboxTokenType,
		"Properties": map[string]any{
			"SandboxId":  xstsSandbox,
			"UserTokens": []string{xboxLiveToken},
		},
	})
}

func (c xboxClient) authorize(ctx context.Context, endpoint string, body map[string]any) (XboxToken, error) {
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return XboxToken{}, err
	}

	token := gjson.GetBytes(raw, "Token")
	if !token.Exists() || token.String() == "" {
		return XboxToken{}, fmt.Errorf("token of %s: %w", endpoint, domain.ErrMalformedDocument)
	}
	result := XboxToken{Token: token.String()}
	for _, hash := range gjson.GetBytes(raw, "DisplayClaims.xui.#.uhs").Array() {
		result.UserHashes = append(result.UserHashes, hash.String())
	}
	return result, nil
}

// loginWithXbox trades the composed XSTS credential for a game-service token.
func (c xboxClient) loginWithXbox(ctx context.Context, userHash string, xstsToken string) (string, error) {
	raw, err := c.post(ctx, c.cfg.LoginURL, map[string]string{
		"identityToken": fmt.Sprintf("XBL3.0 x=%s;%s", userHash, xstsToken),
	})
	if err != nil {
		return "", err
	}

	token := gjson.GetBytes(raw, "access_token").String()
	if token == "" {
		return "", fmt.Errorf("access_token of %s: %w", c.cfg.LoginURL, domain.ErrMalformedDocument)
	}
	return token, nil
}

func (c xboxClient) profile(ctx context.Context, accessToken string) (Profile, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Accept", "application/json").
		Get(c.cfg.ProfileURL)
	if err != nil {
		return Profile{}, fmt.Errorf("get %s: %w", c.cfg.ProfileURL, err)
	}
	if resp.IsError() {
		return Profile{}, &statusError{method: http.MethodGet, url: c.cfg.ProfileURL, code: resp.StatusCode()}
	}

	result := gjson.GetManyBytes(resp.Body(), "id", "name")
	profile := Profile{ID: result[0].String(), Name: result[1].String()}
	if profile.ID == "" || profile.Name == "" {
		return Profile{}, fmt.Errorf("profile of %s: %w", c.cfg.ProfileURL, domain.ErrMalformedDocument)
	}
	return profile, nil
}

func (c xboxClient) post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", endpoint, err)
	}
	if resp.IsError() {
		return nil, &statusError{method: http.MethodPost, url: endpoint, code: resp.StatusCode()}
	}
	return resp.Body(), nil
}
