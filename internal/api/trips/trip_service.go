package trips

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 50

	dateLayout = "2006-01-02"
)

var ErrInvalidTrip = errors.New("invalid trip")

var _ Service = (*ServiceImpl)(nil)

// Service holds the trip posting business rules on top of the repository.
type Service interface {
	CreateTrip(ctx context.Context, creatorID uuid.UUID, req types.CreateTripRequest) (*types.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*types.Trip, error)
	ListTrips(ctx context.Context, filter types.TripFilter) (*types.PaginatedTripsResponse, error)
	JoinTrip(ctx context.Context, tripID, userID uuid.UUID) error
	LeaveTrip(ctx context.Context, tripID, userID uuid.UUID) error
	PostMessage(ctx context.Context, tripID, userID uuid.UUID, body string) (*types.TripMessage, error)
	ListMessages(ctx context.Context, tripID uuid.UUID) ([]types.TripMessage, error)
	BudgetSummary(ctx context.Context, tripID uuid.UUID) (*types.TripBudgetSummary, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewServiceImpl(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// CreateTrip validates the posting and persists it with the creator enrolled.
func (s *ServiceImpl) CreateTrip(ctx context.Context, creatorID uuid.UUID, req types.CreateTripRequest) (*types.Trip, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "CreateTrip", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
	))
	defer span.End()

	start, end, err := validateCreateRequest(req)
	if err != nil {
		span.SetStatus(codes.Error, "invalid trip request")
		return nil, err
	}

	trip := types.Trip{
		ID:           uuid.New(),
		CreatorID:    creatorID,
		Destination:  req.Destination,
		StartDate:    start,
		EndDate:      end,
		Budget:       req.Budget,
		MaxTravelers: req.MaxTravelers,
		Description:  req.Description,
		Interests:    req.Interests,
		ImageURL:     req.ImageURL,
		Participants: 1,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreateTrip(ctx, trip); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create trip")
		return nil, err
	}

	s.logger.InfoContext(ctx, "Trip created",
		slog.String("tripID", trip.ID.String()), slog.String("destination", trip.Destination))
	span.SetStatus(codes.Ok, "trip created")
	return &trip, nil
}

func validateCreateRequest(req types.CreateTripRequest) (time.Time, time.Time, error) {
	if req.Destination == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: destination is required", ErrInvalidTrip)
	}
	if req.Budget <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: budget must be positive", ErrInvalidTrip)
	}
	if req.MaxTravelers <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: max travelers must be positive", ErrInvalidTrip)
	}
	if len(req.Interests) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: at least one interest is required", ErrInvalidTrip)
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start date", ErrInvalidTrip)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end date", ErrInvalidTrip)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date must not be before start date", ErrInvalidTrip)
	}
	return start, end, nil
}

func (s *ServiceImpl) GetTrip(ctx context.Context, tripID uuid.UUID) (*types.Trip, error) {
	trip, err := s.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListTrips normalises pagination before delegating to the repository.
func (s *ServiceImpl) ListTrips(ctx context.Context, filter types.TripFilter) (*types.PaginatedTripsResponse, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	trips, total, err := s.repo.ListTrips(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &types.PaginatedTripsResponse{
		Trips:        trips,
		TotalRecords: total,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	}, nil
}

func (s *ServiceImpl) JoinTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	return s.repo.JoinTrip(ctx, tripID, userID)
}

func (s *ServiceImpl) LeaveTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	return s.repo.LeaveTrip(ctx, tripID, userID)
}

// PostMessage appends a message to the trip chat.
func (s *ServiceImpl) PostMessage(ctx context.Context, tripID, userID uuid.UUID, body string) (*types.TripMessage, error) {
	if body == "" {
		return nil, fmt.Errorf("%w: message body is required", ErrInvalidTrip)
	}
	msg := types.TripMessage{
		ID:        uuid.New(),
		TripID:    tripID,
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *ServiceImpl) ListMessages(ctx context.Context, tripID uuid.UUID) ([]types.TripMessage, error) {
	return s.repo.ListMessages(ctx, tripID)
}

// BudgetSummary splits the trip budget per day and per person, rounded down
// to whole rupees. Day count is inclusive of both travel dates.
func (s *ServiceImpl) BudgetSummary(ctx context.Context, tripID uuid.UUID) (*types.TripBudgetSummary, error) {
	trip, err := s.repo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	days := int(trip.EndDate.Sub(trip.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return &types.TripBudgetSummary{
		TripID:       trip.ID,
		Total:        trip.Budget,
		Days:         days,
		PerDay:       math.Floor(trip.Budget / float64(days)),
		MaxTravelers: trip.MaxTravelers,
		PerPerson:    math.Floor(trip.Budget / float64(trip.MaxTravelers)),
	}, nil
}
