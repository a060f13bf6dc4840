package ports

import (
	"context"

	"github.com/bnema/mcli/internal/domain"
)

type StateStore interface {
	Read(ctx context.Context, instanceDir string) (domain.InstanceState, error)
	Write(ctx context.Context, state domain.InstanceState, instanceDir string) error
}
