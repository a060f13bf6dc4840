package ports

import (
	"context"
	"errors"
)

// ErrSecretNotFound is returned by SecretStore.Get for unknown keys.
var ErrSecretNotFound = errors.New("secret not found")

type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
