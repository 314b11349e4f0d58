package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

// DB is the slice of pgxpool.Pool the repository uses, kept narrow so tests
// can substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username or email already registered")
)

// Ensure RepositoryImpl implements the Repository interface
var _ Repository = (*RepositoryImpl)(nil)

// Repository defines access to the users table.
type Repository interface {
	CreateUser(ctx context.Context, user types.User) error
	GetUserByEmail(ctx context.Context, email string) (types.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (types.User, error)
}

type RepositoryImpl struct {
	logger *slog.Logger
	pgpool DB
}

func NewRepository(pgpool DB, logger *slog.Logger) *RepositoryImpl {
	return &RepositoryImpl{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *RepositoryImpl) CreateUser(ctx context.Context, user types.User) error {
	query := `
        INSERT INTO users (id, username, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.pgpool.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation on username or email
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUser
		}
		r.logger.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetUserByEmail(ctx context.Context, email string) (types.User, error) {
	query := `
        SELECT id, username, email, password_hash, created_at
        FROM users
        WHERE email = $1
    `
	var user types.User
	err := r.pgpool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.User{}, ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get user by email", slog.Any("error", err))
		return types.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *RepositoryImpl) GetUserByID(ctx context.Context, userID uuid.UUID) (types.User, error) {
	query := `
        SELECT id, username, email, password_hash, created_at
        FROM users
        WHERE id = $1
    `
	var user types.User
	err := r.pgpool.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.User{}, ErrUserNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get user by id", slog.Any("error", err))
		return types.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
