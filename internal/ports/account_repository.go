package ports

import (
	"context"

	"github.com/bnema/mcli/internal/domain"
)

// AccountRepository persists account identities. Tokens are held by a
// SecretStore and referenced from the stored entry.
type AccountRepository interface {
	GetByName(ctx context.Context, name string) (StoredAccount, error)
	List(ctx context.Context) ([]StoredAccount, error)
	Save(ctx context.Context, account StoredAccount) error
	Delete(ctx context.Context, name string) error
}

type StoredAccount struct {
	Name      string
	UUID      string
	SecretRef string
}

func (a StoredAccount) WithTokens(accessToken, refreshToken string) domain.Account {
	return domain.Account{
		Name:         a.Name,
		UUID:         a.UUID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}
