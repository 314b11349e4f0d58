package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahyaatra/sahyaatra-api/config"
	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user types.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (types.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (types.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(types.User), args.Error(1)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey:     "test-secret-key-for-auth-tests",
		Issuer:        "sahyaatra",
		Audience:      "sahyaatra-api",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	}
}

func newService(repo Repository) *ServiceImpl {
	return NewServiceImpl(repo, testJWTConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	var stored types.User
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user types.User) bool {
		stored = user
		return user.Email == "asha@example.com"
	})).Return(nil).Once()

	user, err := svc.Register(context.Background(), types.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse battery")))
	repo.AssertExpectations(t)
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	_, err := svc.Register(context.Background(), types.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "short",
	})

	require.Error(t, err)
	repo.AssertNotCalled(t, "CreateUser")
}

func TestRegister_PropagatesDuplicate(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	repo.On("CreateUser", mock.Anything, mock.Anything).Return(ErrDuplicateUser).Once()

	_, err := svc.Register(context.Background(), types.RegisterRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Password: "correct horse battery",
	})

	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func registeredUser(t *testing.T, password string) types.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return types.User{
		ID:           uuid.New(),
		Username:     "asha",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
}

func TestLogin_IssuesValidTokenPair(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	user := registeredUser(t, "correct horse battery")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	pair, err := svc.Login(context.Background(), types.LoginRequest{
		Email:    user.Email,
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTConfig().SecretKey), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, scopeAccess, claims.Scope)
	assert.Equal(t, "sahyaatra", claims.Issuer)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	user := registeredUser(t, "correct horse battery")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	_, err := svc.Login(context.Background(), types.LoginRequest{
		Email:    user.Email,
		Password: "wrong password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(types.User{}, ErrUserNotFound).Once()

	_, err := svc.Login(context.Background(), types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_ExchangesRefreshToken(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	user := registeredUser(t, "correct horse battery")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	repo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()

	pair, err := svc.Login(context.Background(), types.LoginRequest{
		Email:    user.Email,
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEmpty(t, fresh.RefreshToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	user := registeredUser(t, "correct horse battery")

	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	pair, err := svc.Login(context.Background(), types.LoginRequest{
		Email:    user.Email,
		Password: "correct horse battery",
	})
	require.NoError(t, err)

	// Access tokens must not be accepted on the refresh endpoint.
	_, err = svc.Refresh(context.Background(), pair.AccessToken)

	assert.ErrorIs(t, err, ErrInvalidToken)
	repo.AssertNotCalled(t, "GetUserByID")
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	_, err := svc.Refresh(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
