package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"seatpos/config"
	"seatpos/infras/credstore"
	credMocks "seatpos/infras/credstore/mocks"
	"seatpos/infras/otel/mocks"
	accountMocks "seatpos/internal/domains/account/mocks"
	accountModel "seatpos/internal/domains/account/model"
	accountService "seatpos/internal/domains/account/service"
	authMocks "seatpos/internal/domains/auth/mocks"
	"seatpos/internal/domains/auth/model/dto"
	"seatpos/internal/domains/auth/service"
	"seatpos/shared/failure"
	queryMocks "seatpos/shared/query/mocks"
)

type fixture struct {
	session service.Session
	auth    *authMocks.MockAuth
	account *accountMocks.MockAccount
	store   *credMocks.MockStore
	query   *queryMocks.Query
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		auth:    authMocks.NewMockAuth(ctrl),
		account: accountMocks.NewMockAccount(ctrl),
		store:   credMocks.NewMockStore(ctrl),
		query:   queryMocks.NewQuery(),
	}

	cfg := &config.Config{}
	account := accountService.New(f.account, cfg, f.query, mocks.NewOtel())
	f.session = service.New(f.auth, account, f.store, f.query, mocks.NewOtel())

	return f
}

var staff = accountModel.Employee{ID: "3", Email: "staff@cafe.vn", FirstName: "Mai", BranchID: "2"}

func TestSession_NotReadyBeforeBootstrap(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.session.Ready())
	assert.False(t, f.session.State().Ready)
}

func TestSession_Bootstrap(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(f *fixture)
		wantSignedIn bool
	}{
		{
			name: "no stored credentials",
			setupMock: func(f *fixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(credstore.Credentials{}, credstore.ErrNotFound)
			},
		},
		{
			name: "restored",
			setupMock: func(f *fixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(credstore.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
				f.account.EXPECT().GetProfile(gomock.Any()).Return(staff, nil)
			},
			wantSignedIn: true,
		},
		{
			name: "profile fetch fails",
			setupMock: func(f *fixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(credstore.Credentials{AccessToken: "a", RefreshToken: "r"}, nil)
				f.account.EXPECT().GetProfile(gomock.Any()).Return(accountModel.Employee{}, failure.Unauthorized("session expired, please sign in again"))
				f.store.EXPECT().Remove(gomock.Any()).Return(nil)
			},
		},
		{
			name: "unreadable credentials",
			setupMock: func(f *fixture) {
				f.store.EXPECT().Load(gomock.Any()).Return(credstore.Credentials{}, credstore.ErrInvalidSeal)
				f.store.EXPECT().Remove(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			require.NoError(t, f.session.Bootstrap(context.Background()))

			state := f.session.State()
			assert.True(t, state.Ready)
			assert.Equal(t, tt.wantSignedIn, state.SignedIn)

			branchID, ok := f.session.BranchID()
			assert.Equal(t, tt.wantSignedIn, ok)

			if tt.wantSignedIn {
				assert.Equal(t, "2", branchID)
				assert.Equal(t, "Mai", state.Profile.FirstName)
			} else {
				assert.Nil(t, state.Profile)
			}
		})
	}
}

func TestSession_SignIn(t *testing.T) {
	t.Run("successful sign in", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.auth.EXPECT().
				Login(gomock.Any(), dto.LoginRequest{Email: "staff@cafe.vn", Password: "secret"}).
				Return(dto.LoginResponse{AccessToken: "a", RefreshToken: "r"}, nil),
			f.store.EXPECT().
				Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, c credstore.Credentials) error {
					assert.Equal(t, "a", c.AccessToken)
					assert.Equal(t, "r", c.RefreshToken)

					return nil
				}),
			f.account.EXPECT().GetProfile(gomock.Any()).Return(staff, nil),
		)

		state, err := f.session.SignIn(context.Background(), dto.LoginRequest{Email: " staff@cafe.vn ", Password: "secret"})
		require.NoError(t, err)

		assert.True(t, state.Ready)
		assert.True(t, state.SignedIn)
		assert.Equal(t, "2", state.BranchID)
		assert.Equal(t, 1, f.query.Cleared)
	})

	t.Run("local validation happens before any remote call", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.session.SignIn(context.Background(), dto.LoginRequest{Email: "staff", Password: "secret"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

		_, err = f.session.SignIn(context.Background(), dto.LoginRequest{Email: "staff@cafe.vn", Password: "has space"})
		require.Error(t, err)
		assert.Equal(t, "password must not contain spaces", err.Error())
	})

	t.Run("rejected credentials leave the session untouched", func(t *testing.T) {
		f := newFixture(t)

		f.auth.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(dto.LoginResponse{}, failure.Remote(http.StatusUnauthorized, "Bad credentials"))

		_, err := f.session.SignIn(context.Background(), dto.LoginRequest{Email: "staff@cafe.vn", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		assert.Contains(t, err.Error(), "Bad credentials")
		assert.Zero(t, f.query.Cleared)
		assert.False(t, f.session.State().SignedIn)
	})

	t.Run("profile failure discards the new credentials", func(t *testing.T) {
		f := newFixture(t)

		f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{AccessToken: "a", RefreshToken: "r"}, nil)
		f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		f.account.EXPECT().GetProfile(gomock.Any()).Return(accountModel.Employee{}, errors.New("connection reset"))
		f.store.EXPECT().Remove(gomock.Any()).Return(nil)

		_, err := f.session.SignIn(context.Background(), dto.LoginRequest{Email: "staff@cafe.vn", Password: "secret"})
		require.Error(t, err)

		state := f.session.State()
		assert.True(t, state.Ready)
		assert.False(t, state.SignedIn)
	})
}

func TestSession_SignOut(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Load(gomock.Any()).Return(credstore.Credentials{AccessToken: "a"}, nil)
	f.account.EXPECT().GetProfile(gomock.Any()).Return(staff, nil)
	f.store.EXPECT().Remove(gomock.Any()).Return(nil)

	require.NoError(t, f.session.Bootstrap(context.Background()))
	require.True(t, f.session.State().SignedIn)

	require.NoError(t, f.session.SignOut(context.Background()))

	state := f.session.State()
	assert.True(t, state.Ready)
	assert.False(t, state.SignedIn)
	assert.Nil(t, state.Profile)
	assert.Equal(t, 1, f.query.Cleared)

	_, ok := f.session.Profile()
	assert.False(t, ok)
}
