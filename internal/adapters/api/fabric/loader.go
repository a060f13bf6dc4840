// Package fabric talks to the fabric meta service.
package fabric

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/mcli/internal/adapters/api"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
	"github.com/buger/jsonparser"
	"golang.org/x/mod/semver"
)

const DefaultMetaURL = "https://meta.fabricmc.net/v2"

type Client struct {
	source  ports.DocumentSource
	baseURL string
}

var _ ports.LoaderAPI = (*Client)(nil)

func NewClient(source ports.DocumentSource, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultMetaURL
	}
	return &Client{source: source, baseURL: strings.TrimRight(baseURL, "/")}
}

// Loaders lists every published loader version, newest first.
func (c *Client) Loaders(ctx context.Context) ([]domain.LoaderVersion, error) {
	body, err := c.source.Fetch(ctx, c.baseURL+"/versions/loader")
	if err != nil {
		return nil, fmt.Errorf("fetch fabric loaders: %w", err)
	}

	var loaders []domain.LoaderVersion
	if err := json.Unmarshal(body, &loaders); err != nil {
		return nil, domain.Wrap(domain.CategoryAPI,
			fmt.Errorf("decode fabric loaders: %w: %v", domain.ErrMalformedDocument, err))
	}
	return loaders, nil
}

// BestLoaderVersion picks the highest stable loader published for the game
// version. When none is marked stable the first listed one wins.
func (c *Client) BestLoaderVersion(ctx context.Context, gameVersion string) (string, error) {
	body, err := c.source.Fetch(ctx, c.baseURL+"/versions/loader/"+gameVersion)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.NotFound() {
			return "", loaderNotFound(gameVersion)
		}
		return "", fmt.Errorf("fetch fabric loaders for %s: %w", gameVersion, err)
	}

	candidates, err := parseCandidates(body)
	if err != nil {
		return "", domain.Wrap(domain.CategoryAPI,
			fmt.Errorf("decode fabric loaders for %s: %w: %v", gameVersion, domain.ErrMalformedDocument, err))
	}
	if len(candidates) == 0 {
		return "", loaderNotFound(gameVersion)
	}
	return pickLoader(candidates), nil
}

func (c *Client) ProfileURL(gameVersion, loaderVersion string) string {
	return fmt.Sprintf("%s/versions/loader/%s/%s/profile/json", c.baseURL, gameVersion, loaderVersion)
}

func loaderNotFound(gameVersion string) error {
	return domain.Wrap(domain.CategoryAPI, fmt.Errorf("game version %s: %w", gameVersion, domain.ErrLoaderNotFound))
}

func parseCandidates(body []byte) ([]domain.LoaderVersion, error) {
	var (
		candidates []domain.LoaderVersion
		entryErr   error
	)
	_, err := jsonparser.ArrayEach(body, func(value []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil || entryErr != nil {
			return
		}
		version, err := jsonparser.GetString(value, "loader", "version")
		if err != nil {
			entryErr = fmt.Errorf("loader.version: %w", err)
			return
		}
		stable, _ := jsonparser.GetBoolean(value, "loader", "stable")
		candidates = append(candidates, domain.LoaderVersion{Version: version, Stable: stable})
	})
	if err != nil {
		return nil, err
	}
	if entryErr != nil {
		return nil, entryErr
	}
	return candidates, nil
}

func pickLoader(candidates []domain.LoaderVersion) string {
	best := ""
	for _, c := range candidates {
		if !c.Stable || !semver.IsValid("v"+c.Version) {
			continue
		}
		if best == "" || semver.Compare("v"+c.Version, "v"+best) > 0 {
			best = c.Version
		}
	}
	if best == "" {
		return candidates[0].Version
	}
	return best
}
