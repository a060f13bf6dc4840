// Package loader turns version metadata into download sets, instance state
// and launch commands. Vanilla is the base unit; loader overlays such as
// Fabric own a Vanilla and extend it.
package loader

import (
	"os"
	"strings"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/paths"
	"github.com/bnema/mcli/internal/ports"
)

const (
	DefaultResourcesURL = "https://resources.download.minecraft.net"

	fabricMetaPrefix = "fabric-loader-"
)

// ClasspathSeparator joins classpath entries.
const ClasspathSeparator = string(os.PathListSeparator)

// Identity is reported to the game through the launcher placeholders.
type Identity struct {
	Name    string
	Version string
}

// Env is everything a unit needs to plan or launch one instance.
type Env struct {
	Paths        *paths.Registry
	Platform     domain.Platform
	Versions     ports.VersionResolver
	Loaders      ports.LoaderAPI
	Cache        ports.MetadataCache
	ResourcesURL string
	Launcher     Identity
}

func (e Env) resourcesURL() string {
	if e.ResourcesURL == "" {
		return DefaultResourcesURL
	}
	return strings.TrimRight(e.ResourcesURL, "/")
}

// layout holds the resolved roots of an instance.
type layout struct {
	instance  string
	natives   string
	resources string
	assets    string
	libraries string
}

func resolveLayout(registry *paths.Registry) (layout, error) {
	var (
		l   layout
		err error
	)
	roots := []struct {
		root paths.Root
		dst  *string
	}{
		{paths.Instance, &l.instance},
		{paths.Natives, &l.natives},
		{paths.Resources, &l.resources},
		{paths.Assets, &l.assets},
		{paths.Libraries, &l.libraries},
	}
	for _, r := range roots {
		if *r.dst, err = registry.Get(r.root); err != nil {
			return layout{}, err
		}
	}
	return l, nil
}
