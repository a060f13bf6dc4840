package ports

import (
	"context"

	"github.com/bnema/mcli/internal/domain"
)

// Authenticator signs a player in and returns the resulting account with
// both tokens.
type Authenticator interface {
	Authenticate(ctx context.Context) (domain.Account, error)
}
