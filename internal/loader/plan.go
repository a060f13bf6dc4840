package loader

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/verify"
)

// needsFetch reports whether dest must be downloaded. Without a digest only
// existence is checked.
func needsFetch(dest, sha1 string) (bool, error) {
	if sha1 == "" {
		return !verify.Exists(dest), nil
	}
	ok, err := verify.FileMatches(dest, sha1)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func enqueue(set *domain.DownloadSet, entry domain.DownloadEntry, sha1 string) error {
	fetch, err := needsFetch(entry.Path, sha1)
	if err != nil {
		return err
	}
	if fetch {
		set.Add(entry)
	}
	return nil
}

func libraryPath(librariesDir string, lib domain.Library) (string, error) {
	coordinate, err := domain.ParseCoordinate(lib.Name)
	if err != nil {
		return "", err
	}
	return filepath.Join(librariesDir, filepath.FromSlash(coordinate.Path())), nil
}

// nativePath keeps native bundles per instance under their archive name.
func nativePath(nativesDir string, artifact domain.Artifact) string {
	name := path.Base(artifact.Path)
	if artifact.Path == "" {
		name = path.Base(artifact.URL)
	}
	return filepath.Join(nativesDir, name)
}

// planAssets enqueues asset objects missing on disk. Objects are only
// checked for existence, their content hash is not re-verified.
func planAssets(set *domain.DownloadSet, l layout, assetSet string, index domain.AssetIndex, resourcesURL string) error {
	keys := make([]string, 0, len(index.Objects))
	for key := range index.Objects {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	legacy := domain.IsLegacyAssetSet(assetSet)
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		object := index.Objects[key]
		if len(object.Hash) < 2 {
			return fmt.Errorf("asset %q: %w", key, domain.ErrMalformedDocument)
		}

		dest := AssetObjectPath(l.assets, object.Hash)
		if legacy {
			dest = LegacyAssetPath(l.resources, key)
		}
		if _, ok := seen[dest]; ok {
			continue
		}
		seen[dest] = struct{}{}
		if verify.Exists(dest) {
			continue
		}
		set.Add(domain.DownloadEntry{
			URL:  resourcesURL + "/" + object.Hash[:2] + "/" + object.Hash,
			Path: dest,
		})
	}
	return nil
}

// AssetObjectPath is the content addressed location of an asset object.
func AssetObjectPath(assetsDir, hash string) string {
	return filepath.Join(assetsDir, "objects", hash[:2], hash)
}

func LegacyAssetPath(resourcesDir, key string) string {
	return filepath.Join(resourcesDir, filepath.FromSlash(key))
}
