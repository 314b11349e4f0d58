package trips

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTrip(ctx context.Context, trip types.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockRepository) GetTrip(ctx context.Context, tripID uuid.UUID) (types.Trip, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).(types.Trip), args.Error(1)
}

func (m *MockRepository) ListTrips(ctx context.Context, filter types.TripFilter) ([]types.Trip, int, error) {
	args := m.Called(ctx, filter)
	var trips []types.Trip
	if args.Get(0) != nil {
		trips = args.Get(0).([]types.Trip)
	}
	return trips, args.Int(1), args.Error(2)
}

func (m *MockRepository) JoinTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	return m.Called(ctx, tripID, userID).Error(0)
}

func (m *MockRepository) LeaveTrip(ctx context.Context, tripID, userID uuid.UUID) error {
	return m.Called(ctx, tripID, userID).Error(0)
}

func (m *MockRepository) AddMessage(ctx context.Context, msg types.TripMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockRepository) ListMessages(ctx context.Context, tripID uuid.UUID) ([]types.TripMessage, error) {
	args := m.Called(ctx, tripID)
	var msgs []types.TripMessage
	if args.Get(0) != nil {
		msgs = args.Get(0).([]types.TripMessage)
	}
	return msgs, args.Error(1)
}

func newService(repo Repository) *ServiceImpl {
	return NewServiceImpl(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validCreateRequest() types.CreateTripRequest {
	return types.CreateTripRequest{
		Destination:  "Udaipur",
		StartDate:    "2024-03-10",
		EndDate:      "2024-03-14",
		Budget:       50000,
		MaxTravelers: 4,
		Interests:    []string{"lakes", "palaces"},
	}
}

func TestCreateTrip_Valid(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	creatorID := uuid.New()

	repo.On("CreateTrip", mock.Anything, mock.MatchedBy(func(trip types.Trip) bool {
		return trip.Destination == "Udaipur" && trip.CreatorID == creatorID && trip.Participants == 1
	})).Return(nil).Once()

	trip, err := svc.CreateTrip(context.Background(), creatorID, validCreateRequest())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, trip.ID)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), trip.StartDate)
	repo.AssertExpectations(t)
}

func TestCreateTrip_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.CreateTripRequest)
	}{
		{"missing destination", func(r *types.CreateTripRequest) { r.Destination = "" }},
		{"zero budget", func(r *types.CreateTripRequest) { r.Budget = 0 }},
		{"zero travelers", func(r *types.CreateTripRequest) { r.MaxTravelers = 0 }},
		{"no interests", func(r *types.CreateTripRequest) { r.Interests = nil }},
		{"bad start date", func(r *types.CreateTripRequest) { r.StartDate = "tomorrow" }},
		{"bad end date", func(r *types.CreateTripRequest) { r.EndDate = "" }},
		{"end before start", func(r *types.CreateTripRequest) { r.StartDate = "2024-03-14"; r.EndDate = "2024-03-10" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := newService(repo)

			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.CreateTrip(context.Background(), uuid.New(), req)

			assert.ErrorIs(t, err, ErrInvalidTrip)
			repo.AssertNotCalled(t, "CreateTrip")
		})
	}
}

func TestListTrips_NormalisesPagination(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	repo.On("ListTrips", mock.Anything, types.TripFilter{Page: 1, PageSize: 10}).
		Return([]types.Trip{}, 0, nil).Once()
	repo.On("ListTrips", mock.Anything, types.TripFilter{Page: 3, PageSize: 50}).
		Return([]types.Trip{}, 0, nil).Once()

	_, err := svc.ListTrips(context.Background(), types.TripFilter{})
	require.NoError(t, err)

	_, err = svc.ListTrips(context.Background(), types.TripFilter{Page: 3, PageSize: 500})
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestPostMessage_RejectsEmptyBody(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)

	_, err := svc.PostMessage(context.Background(), uuid.New(), uuid.New(), "")

	assert.ErrorIs(t, err, ErrInvalidTrip)
	repo.AssertNotCalled(t, "AddMessage")
}

func TestBudgetSummary_SplitsPerDayAndPerPerson(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	tripID := uuid.New()

	repo.On("GetTrip", mock.Anything, tripID).Return(types.Trip{
		ID:           tripID,
		StartDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Budget:       50000,
		MaxTravelers: 4,
	}, nil).Once()

	summary, err := svc.BudgetSummary(context.Background(), tripID)

	require.NoError(t, err)
	assert.Equal(t, 5, summary.Days) // both travel dates inclusive
	assert.Equal(t, 10000.0, summary.PerDay)
	assert.Equal(t, 12500.0, summary.PerPerson)
	assert.Equal(t, 50000.0, summary.Total)
	repo.AssertExpectations(t)
}

func TestBudgetSummary_PropagatesNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := newService(repo)
	tripID := uuid.New()

	repo.On("GetTrip", mock.Anything, tripID).Return(types.Trip{}, ErrTripNotFound).Once()

	_, err := svc.BudgetSummary(context.Background(), tripID)

	assert.ErrorIs(t, err, ErrTripNotFound)
}
