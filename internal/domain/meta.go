package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	ArgumentsGame = "game"
	ArgumentsJVM  = "jvm"
)

// VersionRecord is one entry of the remote version manifest.
type VersionRecord struct {
	ID          string `json:"id"`
	Kind        string `json:"type"`
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
}

func (v VersionRecord) IsSnapshot() bool {
	return v.Kind == "snapshot"
}

type Manifest struct {
	Latest   LatestVersions  `json:"latest"`
	Versions []VersionRecord `json:"versions"`
}

type LatestVersions struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// Meta is a version or loader metadata document.
type Meta struct {
	ID           string              `json:"id"`
	Kind         string              `json:"type"`
	InheritsFrom string              `json:"inheritsFrom,omitempty"`
	MainClass    string              `json:"mainClass"`
	Assets       string              `json:"assets,omitempty"`
	AssetIndex   AssetIndexRef       `json:"assetIndex"`
	Downloads    MetaDownloads       `json:"downloads"`
	Libraries    []Library           `json:"libraries"`
	Arguments    map[string][]string `json:"-"`
}

type AssetIndexRef struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	SHA1 string `json:"sha1,omitempty"`
}

type MetaDownloads struct {
	Client Artifact  `json:"client"`
	Server *Artifact `json:"server,omitempty"`
}

// UnmarshalJSON accepts both argument layouts: the "arguments" object of
// template groups and the older space-delimited "minecraftArguments" string.
// Only plain string templates are kept.
func (m *Meta) UnmarshalJSON(data []byte) error {
	type metaFields Meta
	var fields metaFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	*m = Meta(fields)
	m.Arguments = parseArguments(data)
	return nil
}

func parseArguments(data []byte) map[string][]string {
	groups := map[string][]string{}

	arguments := gjson.GetBytes(data, "arguments")
	if arguments.IsObject() {
		arguments.ForEach(func(group, templates gjson.Result) bool {
			list := make([]string, 0, len(templates.Array()))
			for _, template := range templates.Array() {
				if template.Type == gjson.String {
					list = append(list, template.String())
				}
			}
			groups[group.String()] = list
			return true
		})
	}

	legacy := gjson.GetBytes(data, "minecraftArguments")
	if _, ok := groups[ArgumentsGame]; !ok && legacy.Type == gjson.String {
		groups[ArgumentsGame] = strings.Fields(legacy.String())
	}

	return groups
}

// AssetIndex is the asset index document: logical key to content hash.
type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
}

type AssetObject struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// IsLegacyAssetSet reports whether objects of the asset set are laid out by
// key under the instance resources directory instead of by hash.
func IsLegacyAssetSet(id string) bool {
	return id == "legacy" || id == "pre-1.6"
}
