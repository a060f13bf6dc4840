// Package metacache keeps version, loader and asset index documents on disk.
// A cached file is trusted as is; only a missing or unparsable file triggers
// a fetch.
package metacache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/mcli/internal/atomicfile"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/logging"
	"github.com/bnema/mcli/internal/paths"
	"github.com/bnema/mcli/internal/ports"
	"go.uber.org/zap"
)

const cacheFileMode = 0o644

type Cache struct {
	source    ports.DocumentSource
	metaDir   string
	assetsDir string
}

var _ ports.MetadataCache = (*Cache)(nil)

func New(source ports.DocumentSource, metaDir, assetsDir string) *Cache {
	return &Cache{source: source, metaDir: metaDir, assetsDir: assetsDir}
}

// FromRegistry places the cache under the registry's meta and assets roots.
func FromRegistry(source ports.DocumentSource, registry *paths.Registry) (*Cache, error) {
	metaDir, err := registry.Get(paths.Meta)
	if err != nil {
		return nil, err
	}
	assetsDir, err := registry.Get(paths.Assets)
	if err != nil {
		return nil, err
	}
	return New(source, metaDir, assetsDir), nil
}

// MetaPath is where a metadata document of namespace and id is cached.
func (c *Cache) MetaPath(namespace, id string) string {
	return filepath.Join(c.metaDir, namespace, id+".json")
}

func (c *Cache) AssetIndexPath(id string) string {
	return filepath.Join(c.assetsDir, "indexes", id+".json")
}

func (c *Cache) Meta(ctx context.Context, namespace, id string, url ports.URLFunc) (domain.Meta, error) {
	meta, err := load[domain.Meta](ctx, c.source, c.MetaPath(namespace, id), url)
	if err != nil {
		return domain.Meta{}, fmt.Errorf("load %s metadata %s: %w", namespace, id, err)
	}
	return meta, nil
}

func (c *Cache) AssetIndex(ctx context.Context, id string, url string) (domain.AssetIndex, error) {
	index, err := load[domain.AssetIndex](ctx, c.source, c.AssetIndexPath(id), func(context.Context) (string, error) {
		return url, nil
	})
	if err != nil {
		return domain.AssetIndex{}, fmt.Errorf("load asset index %s: %w", id, err)
	}
	return index, nil
}

func load[T any](ctx context.Context, source ports.DocumentSource, path string, url ports.URLFunc) (T, error) {
	var doc T
	logger := logging.FromContext(ctx)

	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &doc); err == nil {
			logger.Debug("metadata cache hit", zap.String("path", path))
			return doc, nil
		}
		logger.Debug("metadata cache unreadable, refetching", zap.String("path", path))
	}

	location, err := url(ctx)
	if err != nil {
		return doc, err
	}
	body, err := source.Fetch(ctx, location)
	if err != nil {
		return doc, err
	}

	if err := json.Unmarshal(body, &doc); err != nil {
		if !errors.Is(err, domain.ErrMalformedDocument) {
			err = fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}
		return doc, domain.Wrap(domain.CategoryAPI, fmt.Errorf("decode %s: %w", location, err))
	}
	if err := atomicfile.Write(path, body, cacheFileMode); err != nil {
		return doc, fmt.Errorf("cache %s: %w", location, err)
	}

	logger.Debug("metadata cached", zap.String("url", location), zap.String("path", path))
	return doc, nil
}
