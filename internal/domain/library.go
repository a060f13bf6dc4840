package domain

import (
	"fmt"
	"strings"
)

// Library is one classpath entry of a version document. Loader profiles
// name a maven repository in URL and publish the jar digest in SHA1 instead
// of a downloads block.
type Library struct {
	Name      string            `json:"name"`
	URL       string            `json:"url,omitempty"`
	SHA1      string            `json:"sha1,omitempty"`
	Downloads LibraryDownloads  `json:"downloads"`
	Natives   map[string]string `json:"natives,omitempty"`
	Rules     []Rule            `json:"rules,omitempty"`
}

type LibraryDownloads struct {
	Artifact    *Artifact           `json:"artifact,omitempty"`
	Classifiers map[string]Artifact `json:"classifiers,omitempty"`
}

type Artifact struct {
	URL  string `json:"url"`
	Path string `json:"path,omitempty"`
	SHA1 string `json:"sha1"`
	Size int64  `json:"size,omitempty"`
}

// NativeArtifact returns the classifier artifact a library requires on the
// platform. ok is false when the library declares no native for it.
func (l Library) NativeArtifact(platform Platform) (Artifact, bool, error) {
	key, ok := l.Natives[platform.Name]
	if !ok {
		return Artifact{}, false, nil
	}
	key = strings.ReplaceAll(key, "${arch}", platform.Arch)

	artifact, ok := l.Downloads.Classifiers[key]
	if !ok {
		return Artifact{}, false, fmt.Errorf("%s (%s): %w", l.Name, key, ErrLibraryNoClassifiers)
	}
	return artifact, true, nil
}

// Coordinate is a parsed maven identity group:artifact:version[:classifier].
type Coordinate struct {
	Group      string
	Artifact   string
	Version    string
	Classifier string
}

func ParseCoordinate(name string) (Coordinate, error) {
	parts := strings.Split(name, ":")
	if len(parts) < 3 || len(parts) > 4 {
		return Coordinate{}, fmt.Errorf("parse maven coordinate %q: %w", name, ErrMalformedDocument)
	}
	for _, part := range parts {
		if part == "" {
			return Coordinate{}, fmt.Errorf("parse maven coordinate %q: %w", name, ErrMalformedDocument)
		}
	}

	c := Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}
	if len(parts) == 4 {
		c.Classifier = parts[3]
	}
	return c, nil
}

// Path is the slash separated repository path of the coordinate's jar.
func (c Coordinate) Path() string {
	file := c.Artifact + "-" + c.Version
	if c.Classifier != "" {
		file += "-" + c.Classifier
	}

	return strings.Join([]string{
		strings.ReplaceAll(c.Group, ".", "/"),
		c.Artifact,
		c.Version,
		file + ".jar",
	}, "/")
}

func (c Coordinate) String() string {
	s := c.Group + ":" + c.Artifact + ":" + c.Version
	if c.Classifier != "" {
		s += ":" + c.Classifier
	}
	return s
}

// ClientJarPath is the repository path of a version's client jar.
func ClientJarPath(versionID string) string {
	return fmt.Sprintf("com/mojang/minecraft/%s/minecraft-%s-client.jar", versionID, versionID)
}
