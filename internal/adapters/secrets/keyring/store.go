// Package keyring keeps secrets in the operating system keyring.
package keyring

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mcli/internal/ports"
	gokeyring "github.com/zalando/go-keyring"
)

const DefaultService = "mcli"

type Store struct {
	service string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(service string) *Store {
	if service == "" {
		service = DefaultService
	}
	return &Store{service: service}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value, err := gokeyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", fmt.Errorf("keyring secret %q: %w", key, ports.ErrSecretNotFound)
		}
		return "", fmt.Errorf("read keyring secret %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := gokeyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("write keyring secret %q: %w", key, err)
	}
	return nil
}

// Delete succeeds when the secret is already gone.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := gokeyring.Delete(s.service, key)
	if err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return fmt.Errorf("delete keyring secret %q: %w", key, err)
	}
	return nil
}
