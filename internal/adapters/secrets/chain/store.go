// Package chain layers a primary token store over a fallback one.
package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/mcli/internal/adapters/secrets/file"
	keyringstore "github.com/bnema/mcli/internal/adapters/secrets/keyring"
	passstore "github.com/bnema/mcli/internal/adapters/secrets/pass"
	"github.com/bnema/mcli/internal/ports"
)

var errMissingBackend = errors.New("token store chain needs a primary and a fallback backend")

// Store reads and writes through primary and turns to fallback whenever
// primary fails for any reason other than the caller's context ending.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func New(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil || fallback == nil {
		return nil, errMissingBackend
	}
	return &Store{primary: primary, fallback: fallback}, nil
}

// NewKeyringFirstWithFileFallback keeps tokens in the system keyring and
// falls back to private files under fileRoot when it is unavailable.
func NewKeyringFirstWithFileFallback(service string, fileRoot string) (*Store, error) {
	return New(keyringstore.NewStore(service), filestore.NewStore(fileRoot))
}

// NewPassFirstWithFileFallback keeps tokens in the pass(1) store under
// prefix and falls back to private files under fileRoot.
func NewPassFirstWithFileFallback(prefix string, fileRoot string) (*Store, error) {
	return New(passstore.NewStore(prefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	return s.firstOf("put", key, func(backend ports.SecretStore) error {
		return backend.Put(ctx, key, value)
	})
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.firstOf("get", key, func(backend ports.SecretStore) error {
		var err error
		value, err = backend.Get(ctx, key)
		return err
	})
	return value, err
}

// Delete clears the key from both backends. A token written while the
// primary was unreachable lives only in the fallback.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if contextEnded(err) {
		return err
	}
	fallbackErr := s.fallback.Delete(ctx, key)
	if err != nil && fallbackErr != nil {
		return backendsFailed("delete", key, err, fallbackErr)
	}
	return nil
}

func (s *Store) firstOf(op, key string, call func(ports.SecretStore) error) error {
	err := call(s.primary)
	if err == nil || contextEnded(err) {
		return err
	}
	if fallbackErr := call(s.fallback); fallbackErr != nil {
		return backendsFailed(op, key, err, fallbackErr)
	}
	return nil
}

func backendsFailed(op, key string, primaryErr, fallbackErr error) error {
	return fmt.Errorf("%s token %q: primary backend: %w; fallback backend: %w", op, key, primaryErr, fallbackErr)
}

func contextEnded(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
