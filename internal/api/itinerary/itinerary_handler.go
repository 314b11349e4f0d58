package itinerary

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahyaatra/sahyaatra-api/internal/api"
	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

type Handler struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewHandler(itineraryService Service, logger *slog.Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// Generate handles POST /ai/itinerary.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Generate", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/ai/itinerary"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Generate"))
	l.DebugContext(ctx, "Generate itinerary handler invoked")

	var req types.ItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Destination == "" {
		l.ErrorContext(ctx, "Destination is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Destination is required")
		return
	}
	if req.Budget <= 0 {
		l.ErrorContext(ctx, "Budget must be positive")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Budget must be positive")
		return
	}
	if req.Travelers <= 0 {
		l.ErrorContext(ctx, "Traveler count must be positive")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Traveler count must be positive")
		return
	}
	if len(req.Interests) == 0 {
		l.ErrorContext(ctx, "At least one interest is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "At least one interest is required")
		return
	}

	it := h.itineraryService.GenerateItinerary(ctx, req)

	l.InfoContext(ctx, "Itinerary generated", slog.String("destination", req.Destination), slog.Int("days", len(it.Days)))
	api.WriteJSONResponse(w, r, http.StatusOK, it)
}
