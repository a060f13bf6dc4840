package ports

import (
	"context"

	"github.com/bnema/mcli/internal/domain"
)

type ProcessLauncher interface {
	Launch(ctx context.Context, spec domain.ProcessSpec) (int, error)
}
