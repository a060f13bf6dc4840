package metacache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/paths"
	portmocks "github.com/bnema/mcli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const metaFixture = `{"id": "1.19.2", "mainClass": "net.minecraft.client.main.Main", "assetIndex": {"id": "1.19", "url": "https://meta.example/1.19.json"}}`

func staticURL(url string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) { return url, nil }
}

func TestMetaFetchesAndCachesOnMiss(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := portmocks.NewMockDocumentSource(t)
	cache := New(source, filepath.Join(root, "meta"), filepath.Join(root, "assets"))

	source.EXPECT().Fetch(mock.Anything, "https://meta.example/1.19.2.json").Return([]byte(metaFixture), nil).Once()

	meta, err := cache.Meta(context.Background(), domain.ComponentMinecraft, "1.19.2", staticURL("https://meta.example/1.19.2.json"))
	require.NoError(t, err)
	assert.Equal(t, "net.minecraft.client.main.Main", meta.MainClass)

	data, err := os.ReadFile(filepath.Join(root, "meta", "net.minecraft", "1.19.2.json"))
	require.NoError(t, err)
	assert.JSONEq(t, metaFixture, string(data))

	again, err := cache.Meta(context.Background(), domain.ComponentMinecraft, "1.19.2", func(context.Context) (string, error) {
		return "", errors.New("url must not be resolved on a cache hit")
	})
	require.NoError(t, err)
	assert.Equal(t, meta, again)
}

func TestMetaTrustsExistingCacheFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := portmocks.NewMockDocumentSource(t)
	cache := New(source, filepath.Join(root, "meta"), filepath.Join(root, "assets"))

	path := cache.MetaPath("net.fabricmc", "fabric-loader-0.14.10-1.19.2")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"id": "stale", "mainClass": "net.fabricmc.loader.impl.launch.knot.KnotClient"}`), 0o644))

	meta, err := cache.Meta(context.Background(), "net.fabricmc", "fabric-loader-0.14.10-1.19.2", staticURL("unused"))
	require.NoError(t, err)
	assert.Equal(t, "stale", meta.ID)
}

func TestMetaRefetchesCorruptCacheFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := portmocks.NewMockDocumentSource(t)
	cache := New(source, filepath.Join(root, "meta"), filepath.Join(root, "assets"))

	path := cache.MetaPath(domain.ComponentMinecraft, "1.19.2")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"id": `), 0o644))

	source.EXPECT().Fetch(mock.Anything, "https://meta.example/1.19.2.json").Return([]byte(metaFixture), nil).Once()

	meta, err := cache.Meta(context.Background(), domain.ComponentMinecraft, "1.19.2", staticURL("https://meta.example/1.19.2.json"))
	require.NoError(t, err)
	assert.Equal(t, "1.19.2", meta.ID)
}

func TestMetaDoesNotCacheMalformedDocuments(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := portmocks.NewMockDocumentSource(t)
	cache := New(source, filepath.Join(root, "meta"), filepath.Join(root, "assets"))

	source.EXPECT().Fetch(mock.Anything, "https://meta.example/broken.json").Return([]byte(`<html>`), nil).Once()

	_, err := cache.Meta(context.Background(), domain.ComponentMinecraft, "broken", staticURL("https://meta.example/broken.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedDocument)

	_, statErr := os.Stat(cache.MetaPath(domain.ComponentMinecraft, "broken"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMetaPropagatesURLErrors(t *testing.T) {
	t.Parallel()

	cache := New(portmocks.NewMockDocumentSource(t), t.TempDir(), t.TempDir())

	_, err := cache.Meta(context.Background(), domain.ComponentMinecraft, "9.9.9", func(context.Context) (string, error) {
		return "", domain.ErrVersionNotFound
	})
	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestAssetIndexCachedUnderIndexes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	source := portmocks.NewMockDocumentSource(t)
	cache := New(source, filepath.Join(root, "meta"), filepath.Join(root, "assets"))

	source.EXPECT().Fetch(mock.Anything, "https://meta.example/1.19.json").
		Return([]byte(`{"objects": {"icons/icon_16x16.png": {"hash": "bdf48ef6b5d0d23bbb02e17d04865216179f510a", "size": 3665}}}`), nil).Once()

	index, err := cache.AssetIndex(context.Background(), "1.19", "https://meta.example/1.19.json")
	require.NoError(t, err)
	assert.Equal(t, "bdf48ef6b5d0d23bbb02e17d04865216179f510a", index.Objects["icons/icon_16x16.png"].Hash)

	_, err = os.Stat(filepath.Join(root, "assets", "indexes", "1.19.json"))
	require.NoError(t, err)

	_, err = cache.AssetIndex(context.Background(), "1.19", "https://meta.example/1.19.json")
	require.NoError(t, err)
}

func TestFromRegistryUsesSharedRoots(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	cache, err := FromRegistry(portmocks.NewMockDocumentSource(t), paths.Shared(root))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "meta", "net.minecraft", "1.19.2.json"), cache.MetaPath(domain.ComponentMinecraft, "1.19.2"))
	assert.Equal(t, filepath.Join(root, "assets", "indexes", "1.19.json"), cache.AssetIndexPath("1.19"))

	_, err = FromRegistry(portmocks.NewMockDocumentSource(t), paths.NewRegistry())
	assert.ErrorIs(t, err, domain.ErrPathNotRegistered)
}
