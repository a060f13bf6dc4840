package auth

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/logging"
	"github.com/bnema/mcli/internal/ports"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/browser"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Stage is a step of the sign-in chain. Stages only move forward.
type Stage int

const (
	StageUnauthenticated Stage = iota
	StageAwaitingCode
	StageTokensExchanged
	StageXboxLiveAuthenticated
	StageXSTSAuthenticated
	StageGameAuthenticated
	StageProfileFetched
	StageAuthenticated
)

var stageNames = [...]string{
	StageUnauthenticated:       "unauthenticated",
	StageAwaitingCode:          "awaiting code",
	StageTokensExchanged:       "tokens exchanged",
	StageXboxLiveAuthenticated: "xbox live authenticated",
	StageXSTSAuthenticated:     "xsts authenticated",
	StageGameAuthenticated:     "game authenticated",
	StageProfileFetched:        "profile fetched",
	StageAuthenticated:         "authenticated",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Chain runs the browser sign-in and the token exchanges that follow it.
type Chain struct {
	cfg         Config
	xbox        xboxClient
	openBrowser func(url string) error
	in          io.Reader
	out         io.Writer
}

var _ ports.Authenticator = (*Chain)(nil)

func NewChain(cfg Config, client *resty.Client) *Chain {
	if client == nil {
		client = resty.New()
	}
	return &Chain{
		cfg:         cfg,
		xbox:        xboxClient{http: client, cfg: cfg},
		openBrowser: browser.OpenURL,
		in:          os.Stdin,
		out:         os.Stderr,
	}
}

// WithBrowser replaces the function that opens the authorize URL.
func (c *Chain) WithBrowser(open func(url string) error) *Chain {
	c.openBrowser = open
	return c
}

// WithPrompt sets where the authorize URL is printed and where a pasted
// code is read from when no listener can be bound.
func (c *Chain) WithPrompt(in io.Reader, out io.Writer) *Chain {
	c.in = in
	c.out = out
	return c
}

// Authenticate walks every stage in order. A failure aborts the chain and
// nothing partial is returned.
func (c *Chain) Authenticate(ctx context.Context) (domain.Account, error) {
	logger := logging.FromContext(ctx)
	stage := StageUnauthenticated
	advance := func(next Stage) {
		logger.Debug("auth stage", zap.Stringer("from", stage), zap.Stringer("to", next))
		stage = next
	}
	fail := func(err error) (domain.Account, error) {
		return domain.Account{}, domain.Wrap(domain.CategoryAccount, fmt.Errorf("%s: %w", stage, err))
	}

	advance(StageAwaitingCode)
	code, oauthConfig, verifier, err := c.authorizationCode(ctx)
	if err != nil {
		return fail(err)
	}

	exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, c.xbox.http.GetClient())
	tokens, err := oauthConfig.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return fail(fmt.Errorf("exchange authorization code: %w", err))
	}
	advance(StageTokensExchanged)

	xboxLive, err := c.xbox.xboxLive(ctx, tokens.AccessToken)
	if err != nil {
		return fail(err)
	}
	if _, err := xboxLive.UserHash(); err != nil {
		return fail(err)
	}
	advance(StageXboxLiveAuthenticated)

	xsts, err := c.xbox.xsts(ctx, xboxLive.Token)
	if err != nil {
		return fail(err)
	}
	userHash, err := xsts.UserHash()
	if err != nil {
		return fail(err)
	}
	advance(StageXSTSAuthenticated)

	gameToken, err := c.xbox.loginWithXbox(ctx, userHash, xsts.Token)
	if err != nil {
		return fail(err)
	}
	advance(StageGameAuthenticated)

	profile, err := c.xbox.profile(ctx, gameToken)
	if err != nil {
		return fail(err)
	}
	advance(StageProfileFetched)

	advance(StageAuthenticated)
	logger.Info("signed in", zap.String("name", profile.Name), zap.String("uuid", profile.ID))
	return domain.Account{
		Name:         profile.Name,
		UUID:         profile.ID,
		AccessToken:  gameToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

func (c *Chain) authorizationCode(ctx context.Context) (string, *oauth2.Config, string, error) {
	state, err := NewState()
	if err != nil {
		return "", nil, "", fmt.Errorf("generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	server, listenErr := StartCallbackServer(c.cfg.ListenAddr, state)
	if listenErr != nil {
		logging.FromContext(ctx).Warn("redirect listener unavailable, falling back to manual code entry", zap.Error(listenErr))
		oauthConfig := c.cfg.oauth2(c.redirectURL(""))
		code, err := c.manualCode(oauthConfig, state, verifier)
		return code, oauthConfig, verifier, err
	}
	defer func() { _ = server.Close() }()

	oauthConfig := c.cfg.oauth2(c.redirectURL(server.RedirectURI()))
	authURL := oauthConfig.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	_, _ = fmt.Fprintf(c.out, "Opening the browser to sign in. If it does not open, visit:\n%s\n", authURL)
	if err := c.openBrowser(authURL); err != nil {
		logging.FromContext(ctx).Warn("open browser", zap.Error(err))
	}

	code, err := server.WaitForCode(ctx)
	if err != nil {
		return "", nil, "", fmt.Errorf("%w: %w", domain.ErrAuthorizationCode, err)
	}
	return code, oauthConfig, verifier, nil
}

func (c *Chain) manualCode(oauthConfig *oauth2.Config, state string, verifier string) (string, error) {
	authURL := oauthConfig.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	_, _ = fmt.Fprintf(c.out, "Visit the URL below to sign in, then paste the address you were redirected to:\n%s\n> ", authURL)

	code, err := readPastedCode(c.in, state)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAuthorizationCode, err)
	}
	return code, nil
}

func (c *Chain) redirectURL(listening string) string {
	switch {
	case c.cfg.RedirectURL != "":
		return c.cfg.RedirectURL
	case listening != "":
		return listening
	default:
		return DefaultRedirectURL
	}
}
