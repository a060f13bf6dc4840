package ports

import (
	"context"

	"github.com/bnema/mcli/internal/domain"
)

type VersionResolver interface {
	Versions(ctx context.Context, snapshots bool) ([]domain.VersionRecord, error)
	Resolve(ctx context.Context, id string, snapshots bool) (domain.VersionRecord, error)
}

type LoaderAPI interface {
	Loaders(ctx context.Context) ([]domain.LoaderVersion, error)
	BestLoaderVersion(ctx context.Context, gameVersion string) (string, error)
	ProfileURL(gameVersion, loaderVersion string) string
}

// DocumentSource fetches raw documents by URL.
type DocumentSource interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// URLFunc yields the URL of a document only when the cache misses.
type URLFunc func(ctx context.Context) (string, error)

type MetadataCache interface {
	Meta(ctx context.Context, namespace, id string, url URLFunc) (domain.Meta, error)
	AssetIndex(ctx context.Context, id string, url string) (domain.AssetIndex, error)
}
