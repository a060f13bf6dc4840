// Package mojang resolves game versions against the launcher manifest.
package mojang

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
)

const DefaultManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest_v2.json"

type Client struct {
	source      ports.DocumentSource
	manifestURL string
}

var _ ports.VersionResolver = (*Client)(nil)

func NewClient(source ports.DocumentSource, manifestURL string) *Client {
	if manifestURL == "" {
		manifestURL = DefaultManifestURL
	}
	return &Client{source: source, manifestURL: manifestURL}
}

func (c *Client) Manifest(ctx context.Context) (domain.Manifest, error) {
	body, err := c.source.Fetch(ctx, c.manifestURL)
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("fetch version manifest: %w", err)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return domain.Manifest{}, domain.Wrap(domain.CategoryAPI,
			fmt.Errorf("decode version manifest: %w: %v", domain.ErrMalformedDocument, err))
	}
	return manifest, nil
}

// Versions lists manifest records, dropping snapshots unless asked for.
func (c *Client) Versions(ctx context.Context, snapshots bool) ([]domain.VersionRecord, error) {
	manifest, err := c.Manifest(ctx)
	if err != nil {
		return nil, err
	}
	return filterVersions(manifest.Versions, snapshots), nil
}

// Latest resolves the manifest's latest pointer to its full record.
func (c *Client) Latest(ctx context.Context, snapshot bool) (domain.VersionRecord, error) {
	manifest, err := c.Manifest(ctx)
	if err != nil {
		return domain.VersionRecord{}, err
	}

	id := manifest.Latest.Release
	if snapshot {
		id = manifest.Latest.Snapshot
	}
	return find(manifest.Versions, id)
}

// Resolve finds the record for id. With an empty id it resolves the latest
// release, or the latest snapshot when snapshots are included.
func (c *Client) Resolve(ctx context.Context, id string, snapshots bool) (domain.VersionRecord, error) {
	if id == "" {
		return c.Latest(ctx, snapshots)
	}

	versions, err := c.Versions(ctx, snapshots)
	if err != nil {
		return domain.VersionRecord{}, err
	}
	return find(versions, id)
}

func filterVersions(versions []domain.VersionRecord, snapshots bool) []domain.VersionRecord {
	filtered := make([]domain.VersionRecord, 0, len(versions))
	for _, v := range versions {
		if v.IsSnapshot() && !snapshots {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

func find(versions []domain.VersionRecord, id string) (domain.VersionRecord, error) {
	for _, v := range versions {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.VersionRecord{}, domain.Wrap(domain.CategoryAPI, fmt.Errorf("%q: %w", id, domain.ErrVersionNotFound))
}
