package trips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

// DB is the slice of pgxpool.Pool the repository uses, kept narrow so tests
// can substitute a mock pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	ErrTripNotFound   = errors.New("trip not found")
	ErrTripFull       = errors.New("trip is already full")
	ErrAlreadyJoined  = errors.New("user already joined this trip")
	ErrNotParticipant = errors.New("user is not a participant of this trip")
)

// Ensure RepositoryImpl implements the Repository interface
var _ Repository = (*RepositoryImpl)(nil)

// Repository defines the persistence operations for trips, participants
// and trip messages.
type Repository interface {
	CreateTrip(ctx context.Context, trip types.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (types.Trip, error)
	ListTrips(ctx context.Context, filter types.TripFilter) ([]types.Trip, int, error)
	JoinTrip(ctx context.Context, tripID, userID uuid.UUID) error
	LeaveTrip(ctx context.Context, tripID, userID uuid.UUID) error
	AddMessage(ctx context.Context, msg types.TripMessage) error
	ListMessages(ctx context.Context, tripID uuid.UUID) ([]types.TripMessage, error)
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

// CreateTrip inserts the trip and enrolls the creator as first participant.
func (r *RepositoryImpl) CreateTrip(ctx context.Context, trip types.Trip) error {
	tx, err := r.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
        INSERT INTO trips (
            id, creator_id, destination, start_date, end_date, budget,
            max_travelers, description, interests, image_url, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
        )
    `
	_, err = tx.Exec(ctx, query,
		trip.ID, trip.CreatorID, trip.Destination, trip.StartDate, trip.EndDate, trip.Budget,
		trip.MaxTravelers, trip.Description, trip.Interests, trip.ImageURL, trip.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to create trip", slog.Any("error", err))
		return fmt.Errorf("failed to create trip: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO trip_participants (trip_id, user_id) VALUES ($1, $2)`,
		trip.ID, trip.CreatorID,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to enroll trip creator", slog.Any("error", err))
		return fmt.Errorf("failed to enroll trip creator: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const tripColumns = `
        t.id, t.creator_id, t.destination, t.start_date, t.end_date, t.budget,
        t.max_travelers, t.description, t.interests, t.image_url,
        (SELECT COUNT(*) FROM trip_participants tp WHERE tp.trip_id = t.id) AS participants,
        t.created_at, t.updated_at
`

func scanTrip(row pgx.Row) (types.Trip, error) {
	var trip types.Trip
	err := row.Scan(
		&trip.ID, &trip.CreatorID, &trip.Destination, &trip.StartDate, &trip.EndDate, &trip.Budget,
		&trip.MaxTravelers, &trip.Description, &trip.Interests, &trip.ImageURL,
		&trip.Participants, &trip.CreatedAt, &trip.UpdatedAt,
	)
	return trip, err
}

// GetTrip retrieves a trip with its current participant count.
func (r *RepositoryImpl) GetTrip(ctx context.Context, tripID uuid.UUID) (types.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips t WHERE t.id = $1`
	trip, err := scanTrip(r.pgpool.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Trip{}, ErrTripNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get trip", slog.Any("error", err))
		return types.Trip{}, fmt.Errorf("failed to get trip: %w", err)
	}
	return trip, nil
}

// ListTrips returns one page of trips matching the filter, newest first,
// together with the unpaginated total.
func (r *RepositoryImpl) ListTrips(ctx context.Context, filter types.TripFilter) ([]types.Trip, int, error) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.Destination != "" {
		conditions = append(conditions, fmt.Sprintf("t.destination ILIKE $%d", argIdx))
		args = append(args, "%"+filter.Destination+"%")
		argIdx++
	}
	if filter.Interest != "" {
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(t.interests)", argIdx))
		args = append(args, filter.Interest)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM trips t` + where
	if err := r.pgpool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.ErrorContext(ctx, "Failed to count trips", slog.Any("error", err))
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM trips t%s ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d`,
		tripColumns, where, argIdx, argIdx+1,
	)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.pgpool.Query(ctx, query, args...)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to list trips", slog.Any("error", err))
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []types.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan trip row", slog.Any("error", err))
			return nil, 0, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, trip)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating trip rows: %w", err)
	}
	return trips, total, nil
}

// JoinTrip enrolls a user, enforcing the capacity limit inside one
// transaction so concurrent joins cannot overbook.
func (r *RepositoryImpl) JoinTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	tx, err := r.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var maxTravelers, participants int
	query := `
        SELECT t.max_travelers,
               (SELECT COUNT(*) FROM trip_participants tp WHERE tp.trip_id = t.id)
        FROM trips t
        WHERE t.id = $1
        FOR UPDATE
    `
	err = tx.QueryRow(ctx, query, tripID).Scan(&maxTravelers, &participants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTripNotFound
		}
		return fmt.Errorf("failed to lock trip: %w", err)
	}
	if participants >= maxTravelers {
		return ErrTripFull
	}

	var joined bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM trip_participants WHERE trip_id = $1 AND user_id = $2)`,
		tripID, userID,
	).Scan(&joined)
	if err != nil {
		return fmt.Errorf("failed to check participant: %w", err)
	}
	if joined {
		return ErrAlreadyJoined
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO trip_participants (trip_id, user_id) VALUES ($1, $2)`,
		tripID, userID,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to join trip", slog.Any("error", err))
		return fmt.Errorf("failed to join trip: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LeaveTrip removes a user from a trip's participant list.
func (r *RepositoryImpl) LeaveTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx,
		`DELETE FROM trip_participants WHERE trip_id = $1 AND user_id = $2`,
		tripID, userID,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to leave trip", slog.Any("error", err))
		return fmt.Errorf("failed to leave trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotParticipant
	}
	return nil
}

// AddMessage posts a message to a trip's companion chat. The sender must be
// a participant.
func (r *RepositoryImpl) AddMessage(ctx context.Context, msg types.TripMessage) error {
	var participant bool
	err := r.pgpool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM trip_participants WHERE trip_id = $1 AND user_id = $2)`,
		msg.TripID, msg.UserID,
	).Scan(&participant)
	if err != nil {
		return fmt.Errorf("failed to check participant: %w", err)
	}
	if !participant {
		return ErrNotParticipant
	}

	_, err = r.pgpool.Exec(ctx,
		`INSERT INTO trip_messages (id, trip_id, user_id, body, created_at) VALUES ($1, $2, $3, $4, $5)`,
		msg.ID, msg.TripID, msg.UserID, msg.Body, msg.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to add trip message", slog.Any("error", err))
		return fmt.Errorf("failed to add trip message: %w", err)
	}
	return nil
}

// ListMessages returns a trip's chat in chronological order.
func (r *RepositoryImpl) ListMessages(ctx context.Context, tripID uuid.UUID) ([]types.TripMessage, error) {
	query := `
        SELECT m.id, m.trip_id, m.user_id, u.username, m.body, m.created_at
        FROM trip_messages m
        JOIN users u ON u.id = m.user_id
        WHERE m.trip_id = $1
        ORDER BY m.created_at ASC
    `
	rows, err := r.pgpool.Query(ctx, query, tripID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to list trip messages", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list trip messages: %w", err)
	}
	defer rows.Close()

	var messages []types.TripMessage
	for rows.Next() {
		var msg types.TripMessage
		if err := rows.Scan(&msg.ID, &msg.TripID, &msg.UserID, &msg.Username, &msg.Body, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip message rows: %w", err)
	}
	return messages, nil
}
