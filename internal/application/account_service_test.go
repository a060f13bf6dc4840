package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
	"github.com/bnema/mcli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const notchUUID = "069a79f444e94726a5befca90e38aaf5"

var notch = domain.Account{
	Name:         "Notch",
	UUID:         notchUUID,
	AccessToken:  "game-token",
	RefreshToken: "ms-refresh",
}

type accountFixture struct {
	repo    *mocks.MockAccountRepository
	store   *mocks.MockSecretStore
	auth    *mocks.MockAuthenticator
	service *AccountService
}

func newAccountFixture(t *testing.T) *accountFixture {
	f := &accountFixture{
		repo:  mocks.NewMockAccountRepository(t),
		store: mocks.NewMockSecretStore(t),
		auth:  mocks.NewMockAuthenticator(t),
	}
	f.service = NewAccountService(f.repo, f.store, f.auth)
	return f
}

func TestAccountServiceLoginStoresTokensAndAccount(t *testing.T) {
	f := newAccountFixture(t)
	f.auth.EXPECT().Authenticate(mock.Anything).Return(notch, nil).Once()
	f.store.EXPECT().Put(mock.Anything, "accounts/"+notchUUID+"/access_token", "game-token").Return(nil).Once()
	f.store.EXPECT().Put(mock.Anything, "accounts/"+notchUUID+"/refresh_token", "ms-refresh").Return(nil).Once()
	f.repo.EXPECT().Save(mock.Anything, ports.StoredAccount{
		Name:      "Notch",
		UUID:      notchUUID,
		SecretRef: "accounts/" + notchUUID,
	}).Return(nil).Once()

	account, err := f.service.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, notch, account)
}

func TestAccountServiceLoginStoresNothingWhenChainFails(t *testing.T) {
	f := newAccountFixture(t)
	chainErr := domain.Wrap(domain.CategoryAccount, domain.ErrNoUserHash)
	f.auth.EXPECT().Authenticate(mock.Anything).Return(domain.Account{}, chainErr).Once()

	_, err := f.service.Login(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoUserHash)
	f.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAccountServiceLoginRollsBackTokensWhenSaveFails(t *testing.T) {
	f := newAccountFixture(t)
	saveErr := errors.New("disk full")
	f.auth.EXPECT().Authenticate(mock.Anything).Return(notch, nil).Once()
	f.store.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(saveErr).Once()
	f.store.EXPECT().Delete(mock.Anything, "accounts/"+notchUUID+"/access_token").Return(nil).Once()
	f.store.EXPECT().Delete(mock.Anything, "accounts/"+notchUUID+"/refresh_token").Return(nil).Once()

	_, err := f.service.Login(context.Background())
	assert.ErrorIs(t, err, saveErr)
	assert.ErrorContains(t, err, "save account")
}

func TestAccountServiceLoginReportsFailedRollback(t *testing.T) {
	f := newAccountFixture(t)
	putErr := errors.New("keyring locked")
	deleteErr := errors.New("keyring gone")
	f.auth.EXPECT().Authenticate(mock.Anything).Return(notch, nil).Once()
	f.store.EXPECT().Put(mock.Anything, "accounts/"+notchUUID+"/access_token", "game-token").Return(nil).Once()
	f.store.EXPECT().Put(mock.Anything, "accounts/"+notchUUID+"/refresh_token", "ms-refresh").Return(putErr).Once()
	f.store.EXPECT().Delete(mock.Anything, mock.Anything).Return(deleteErr).Twice()

	_, err := f.service.Login(context.Background())
	assert.ErrorIs(t, err, putErr)
	assert.ErrorIs(t, err, deleteErr)
	assert.ErrorContains(t, err, "rollback")
}

func TestAccountServiceGetJoinsTokens(t *testing.T) {
	f := newAccountFixture(t)
	f.repo.EXPECT().GetByName(mock.Anything, "Notch").Return(ports.StoredAccount{
		Name: "Notch", UUID: notchUUID, SecretRef: "accounts/" + notchUUID,
	}, nil).Once()
	f.store.EXPECT().Get(mock.Anything, "accounts/"+notchUUID+"/access_token").Return("game-token", nil).Once()
	f.store.EXPECT().Get(mock.Anything, "accounts/"+notchUUID+"/refresh_token").Return("ms-refresh", nil).Once()

	account, err := f.service.Get(context.Background(), "Notch")
	require.NoError(t, err)
	assert.Equal(t, notch, account)
}

func TestAccountServiceGetMissingTokenIsAccountError(t *testing.T) {
	f := newAccountFixture(t)
	f.repo.EXPECT().GetByName(mock.Anything, "Notch").Return(ports.StoredAccount{
		Name: "Notch", UUID: notchUUID, SecretRef: "accounts/" + notchUUID,
	}, nil).Once()
	f.store.EXPECT().Get(mock.Anything, mock.Anything).Return("", ports.ErrSecretNotFound).Once()

	_, err := f.service.Get(context.Background(), "Notch")
	assert.ErrorIs(t, err, ports.ErrSecretNotFound)
	category, _ := domain.CategoryOf(err)
	assert.Equal(t, domain.CategoryAccount, category)
}

func TestAccountServicePlayer(t *testing.T) {
	f := newAccountFixture(t)

	offline, err := f.service.Player(context.Background(), "Steve", true)
	require.NoError(t, err)
	assert.Equal(t, domain.OfflinePlayer("Steve"), offline)

	notFound := domain.Wrap(domain.CategoryAccount, domain.ErrAccountNotFound)
	f.repo.EXPECT().GetByName(mock.Anything, "Steve").Return(ports.StoredAccount{}, notFound).Once()
	_, err = f.service.Player(context.Background(), "Steve", false)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountServiceLogoutDeletesAccountAndTokens(t *testing.T) {
	f := newAccountFixture(t)
	f.repo.EXPECT().GetByName(mock.Anything, "Notch").Return(ports.StoredAccount{
		Name: "Notch", UUID: notchUUID, SecretRef: "accounts/" + notchUUID,
	}, nil).Once()
	f.repo.EXPECT().Delete(mock.Anything, "Notch").Return(nil).Once()
	f.store.EXPECT().Delete(mock.Anything, "accounts/"+notchUUID+"/access_token").Return(nil).Once()
	f.store.EXPECT().Delete(mock.Anything, "accounts/"+notchUUID+"/refresh_token").Return(nil).Once()

	require.NoError(t, f.service.Logout(context.Background(), "Notch"))
}

func TestAccountServiceLogoutUnknownAccount(t *testing.T) {
	f := newAccountFixture(t)
	notFound := domain.Wrap(domain.CategoryAccount, domain.ErrAccountNotFound)
	f.repo.EXPECT().GetByName(mock.Anything, "Ghost").Return(ports.StoredAccount{}, notFound).Once()

	err := f.service.Logout(context.Background(), "Ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
