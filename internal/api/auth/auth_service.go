package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahyaatra/sahyaatra-api/config"
	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Ensure ServiceImpl implements the Service interface
var _ Service = (*ServiceImpl)(nil)

// Service covers account registration and token issuance.
type Service interface {
	Register(ctx context.Context, req types.RegisterRequest) (*types.User, error)
	Login(ctx context.Context, req types.LoginRequest) (*types.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
	jwtCfg config.JWTConfig
}

func NewServiceImpl(repo Repository, jwtCfg config.JWTConfig, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
		jwtCfg: jwtCfg,
	}
}

// Register creates an account with a bcrypt-hashed password.
func (s *ServiceImpl) Register(ctx context.Context, req types.RegisterRequest) (*types.User, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Register", trace.WithAttributes(
		attribute.String("user.email", req.Email),
	))
	defer span.End()

	if req.Username == "" || req.Email == "" {
		return nil, errors.New("username and email are required")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := types.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create user")
		return nil, err
	}

	s.logger.InfoContext(ctx, "User registered", slog.String("userID", user.ID.String()))
	span.SetStatus(codes.Ok, "user registered")
	return &user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *ServiceImpl) Login(ctx context.Context, req types.LoginRequest) (*types.TokenPair, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Login")
	defer span.End()

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		span.RecordError(err)
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.WarnContext(ctx, "Password mismatch", slog.String("userID", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to sign tokens")
		return nil, err
	}
	span.SetStatus(codes.Ok, "login successful")
	return pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *ServiceImpl) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Refresh")
	defer span.End()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SecretKey), nil
	})
	if err != nil || !token.Valid || claims.Scope != scopeRefresh {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		span.RecordError(err)
		return nil, err
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetStatus(codes.Ok, "tokens refreshed")
	return pair, nil
}

func (s *ServiceImpl) issueTokenPair(user types.User) (*types.TokenPair, error) {
	access, err := s.signToken(user, scopeAccess, s.jwtCfg.AccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.signToken(user, scopeRefresh, s.jwtCfg.RefreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *ServiceImpl) signToken(user types.User, scope string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Scope:    scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    s.jwtCfg.Issuer,
			Audience:  jwt.ClaimStrings{s.jwtCfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SecretKey))
}
