package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/logging"
	"github.com/bnema/mcli/internal/ports"
	"go.uber.org/zap"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// AccountService signs players in and keeps their identities. Tokens live in
// the secret store under the account's secret ref.
type AccountService struct {
	repo  ports.AccountRepository
	store ports.SecretStore
	auth  ports.Authenticator
}

func NewAccountService(repo ports.AccountRepository, store ports.SecretStore, auth ports.Authenticator) *AccountService {
	return &AccountService{
		repo:  repo,
		store: store,
		auth:  auth,
	}
}

// Login runs the sign-in chain and stores the account. Nothing is stored
// when any step fails.
func (s *AccountService) Login(ctx context.Context) (domain.Account, error) {
	account, err := s.auth.Authenticate(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	ref := SecretRef(account.UUID)
	if err := s.store.Put(ctx, tokenKey(ref, accessTokenKey), account.AccessToken); err != nil {
		return domain.Account{}, fmt.Errorf("store access token: %w", err)
	}
	if err := s.store.Put(ctx, tokenKey(ref, refreshTokenKey), account.RefreshToken); err != nil {
		if rollbackErr := s.deleteTokens(ctx, ref); rollbackErr != nil {
			return domain.Account{}, fmt.Errorf("store refresh token and rollback stored tokens: %w", errors.Join(err, rollbackErr))
		}
		return domain.Account{}, fmt.Errorf("store refresh token: %w", err)
	}

	stored := ports.StoredAccount{Name: account.Name, UUID: account.UUID, SecretRef: ref}
	if err := s.repo.Save(ctx, stored); err != nil {
		if rollbackErr := s.deleteTokens(ctx, ref); rollbackErr != nil {
			return domain.Account{}, fmt.Errorf("save account and rollback stored tokens: %w", errors.Join(err, rollbackErr))
		}
		return domain.Account{}, fmt.Errorf("save account: %w", err)
	}

	logging.FromContext(ctx).Info("account stored", zap.String("name", account.Name))
	return account, nil
}

// Logout forgets the account and its tokens.
func (s *AccountService) Logout(ctx context.Context, name string) error {
	stored, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := s.deleteTokens(ctx, stored.SecretRef); err != nil {
		return fmt.Errorf("delete account tokens: %w", err)
	}
	return nil
}

func (s *AccountService) List(ctx context.Context) ([]ports.StoredAccount, error) {
	return s.repo.List(ctx)
}

// Get returns the account named name with both tokens.
func (s *AccountService) Get(ctx context.Context, name string) (domain.Account, error) {
	stored, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return domain.Account{}, err
	}

	accessToken, err := s.store.Get(ctx, tokenKey(stored.SecretRef, accessTokenKey))
	if err != nil {
		return domain.Account{}, domain.Wrap(domain.CategoryAccount, fmt.Errorf("access token of %q: %w", name, err))
	}
	refreshToken, err := s.store.Get(ctx, tokenKey(stored.SecretRef, refreshTokenKey))
	if err != nil {
		return domain.Account{}, domain.Wrap(domain.CategoryAccount, fmt.Errorf("refresh token of %q: %w", name, err))
	}
	return stored.WithTokens(accessToken, refreshToken), nil
}

// Player resolves the identity to launch with. Offline players need no
// stored account.
func (s *AccountService) Player(ctx context.Context, name string, offline bool) (domain.Player, error) {
	if offline {
		return domain.OfflinePlayer(name), nil
	}
	account, err := s.Get(ctx, name)
	if err != nil {
		return domain.Player{}, err
	}
	return account.Player(), nil
}

func (s *AccountService) deleteTokens(ctx context.Context, ref string) error {
	var errs error
	for _, key := range []string{accessTokenKey, refreshTokenKey} {
		if err := s.store.Delete(ctx, tokenKey(ref, key)); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// SecretRef is where an account's tokens are stored.
func SecretRef(uuid string) string {
	return "accounts/" + uuid
}

func tokenKey(ref, name string) string {
	return ref + "/" + name
}
