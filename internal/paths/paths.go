// Package paths maps logical root names to filesystem directories.
package paths

import (
	"fmt"
	"path/filepath"

	"github.com/bnema/mcli/internal/domain"
)

type Root string

const (
	Instance  Root = "instance"
	Libraries Root = "libraries"
	Assets    Root = "assets"
	Natives   Root = "natives"
	Meta      Root = "meta"
	Resources Root = "resources"
)

type Registry struct {
	roots map[Root]string
}

func NewRegistry() *Registry {
	return &Registry{roots: map[Root]string{}}
}

// Shared registers the roots every instance under baseDir has in common.
func Shared(baseDir string) *Registry {
	r := NewRegistry()
	r.Set(Meta, filepath.Join(baseDir, "meta"))
	r.Set(Assets, filepath.Join(baseDir, "assets"))
	r.Set(Libraries, filepath.Join(baseDir, "libraries"))
	return r
}

// ForInstance adds the roots of the instance named name to the shared ones.
func ForInstance(baseDir string, name string) *Registry {
	instanceDir := InstanceDir(baseDir, name)

	r := Shared(baseDir)
	r.Set(Instance, instanceDir)
	r.Set(Natives, filepath.Join(instanceDir, "natives"))
	r.Set(Resources, filepath.Join(instanceDir, "resources"))
	return r
}

func InstancesDir(baseDir string) string {
	return filepath.Join(baseDir, "instances")
}

func InstanceDir(baseDir string, name string) string {
	return filepath.Join(InstancesDir(baseDir), name)
}

func (r *Registry) Set(root Root, dir string) {
	r.roots[root] = filepath.Clean(dir)
}

func (r *Registry) Get(root Root) (string, error) {
	dir, ok := r.roots[root]
	if !ok {
		return "", domain.Wrap(domain.CategoryPath, fmt.Errorf("%q: %w", root, domain.ErrPathNotRegistered))
	}
	return dir, nil
}
