package trips

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahyaatra/sahyaatra-api/internal/api"
	"github.com/sahyaatra/sahyaatra-api/internal/api/auth"
	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

type Handler struct {
	tripService Service
	logger      *slog.Logger
}

func NewHandler(tripService Service, logger *slog.Logger) *Handler {
	return &Handler{
		tripService: tripService,
		logger:      logger,
	}
}

func tripIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "tripID"))
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrTripFull), errors.Is(err, ErrAlreadyJoined):
		api.ErrorResponse(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, ErrNotParticipant):
		api.ErrorResponse(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrInvalidTrip):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	default:
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
	}
}

// Create handles POST /trips.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "Create", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Create"))

	userID, ok := auth.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req types.CreateTripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := h.tripService.CreateTrip(ctx, userID, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to create trip", slog.Any("error", err))
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, trip)
}

// Get handles GET /trips/{tripID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "Get", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips/{tripID}"),
	))
	defer span.End()

	tripID, err := tripIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	trip, err := h.tripService.GetTrip(ctx, tripID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, trip)
}

// List handles GET /trips with destination/interest filters and pagination.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "List", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "List"))

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	filter := types.TripFilter{
		Destination: q.Get("destination"),
		Interest:    q.Get("interest"),
		Page:        page,
		PageSize:    pageSize,
	}

	resp, err := h.tripService.ListTrips(ctx, filter)
	if err != nil {
		l.ErrorContext(ctx, "Failed to list trips", slog.Any("error", err))
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// Join handles POST /trips/{tripID}/join.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "Join", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips/{tripID}/join"),
	))
	defer span.End()

	userID, ok := auth.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	tripID, err := tripIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	if err := h.tripService.JoinTrip(ctx, tripID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"status": "joined"})
}

// Leave handles POST /trips/{tripID}/leave.
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "Leave", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips/{tripID}/leave"),
	))
	defer span.End()

	userID, ok := auth.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	tripID, err := tripIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	if err := h.tripService.LeaveTrip(ctx, tripID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"status": "left"})
}

type postMessageRequest struct {
	Body string `json:"body"`
}

// PostMessage handles POST /trips/{tripID}/messages.
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "PostMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips/{tripID}/messages"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "PostMessage"))

	userID, ok := auth.GetUserIDFromContext(ctx)
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}
	tripID, err := tripIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req postMessageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.tripService.PostMessage(ctx, tripID, userID, req.Body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, msg)
}

// ListMessages handles GET /trips/{tripID}/messages.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "ListMessages", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips/{tripID}/messages"),
	))
	defer span.End()

	tripID, err := tripIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	messages, err := h.tripService.ListMessages(ctx, tripID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, messages)
}

// BudgetSummary handles GET /trips/{tripID}/budget.
func (h *Handler) BudgetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "BudgetSummary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/trips/{tripID}/budget"),
	))
	defer span.End()

	tripID, err := tripIDParam(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	summary, err := h.tripService.BudgetSummary(ctx, tripID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, summary)
}
