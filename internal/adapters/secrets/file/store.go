// Package file keeps account tokens as private files laid out as
// <root>/accounts/<uuid>/<token>. It is the fallback when neither the
// system keyring nor pass is reachable.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/mcli/internal/atomicfile"
	"github.com/bnema/mcli/internal/ports"
	"github.com/google/uuid"
)

const (
	accountDirMode = 0o700
	tokenFileMode  = 0o600

	accountsPrefix = "accounts"
)

// ErrInvalidKey is returned for keys outside the accounts/<uuid>/<token>
// layout.
var ErrInvalidKey = errors.New("invalid token key")

var tokenNames = []string{"access_token", "refresh_token"}

type Store struct {
	root string
	mu   sync.Mutex
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

type tokenFile struct {
	dir  string
	path string
}

// locate maps a key to the account directory and token file it lives in.
func (s *Store) locate(key string) (tokenFile, error) {
	parts := strings.Split(key, "/")
	if len(parts) != 3 || parts[0] != accountsPrefix {
		return tokenFile{}, fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	if _, err := uuid.Parse(parts[1]); err != nil {
		return tokenFile{}, fmt.Errorf("%q: account id: %w", key, ErrInvalidKey)
	}
	if !slices.Contains(tokenNames, parts[2]) {
		return tokenFile{}, fmt.Errorf("%q: token %q: %w", key, parts[2], ErrInvalidKey)
	}

	dir := filepath.Join(s.root, accountsPrefix, parts[1])
	return tokenFile{dir: dir, path: filepath.Join(dir, parts[2])}, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := s.locate(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(file.dir, accountDirMode); err != nil {
		return fmt.Errorf("create account token directory: %w", err)
	}
	if err := atomicfile.Write(file.path, []byte(value), tokenFileMode); err != nil {
		return fmt.Errorf("write token %q: %w", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	file, err := s.locate(key)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(file.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("token %q: %w", key, ports.ErrSecretNotFound)
	case err != nil:
		return "", fmt.Errorf("read token %q: %w", key, err)
	}
	return string(data), nil
}

// Delete removes the token, then the account directory once it holds no
// token. A missing token is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	file, err := s.locate(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(file.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete token %q: %w", key, err)
	}
	if entries, err := os.ReadDir(file.dir); err == nil && len(entries) == 0 {
		if err := os.Remove(file.dir); err != nil {
			return fmt.Errorf("delete account token directory: %w", err)
		}
	}
	return nil
}
