package images

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/sahyaatra/sahyaatra-api/internal/api"
)

type Handler struct {
	imageService Service
	logger       *slog.Logger
}

func NewHandler(imageService Service, logger *slog.Logger) *Handler {
	return &Handler{
		imageService: imageService,
		logger:       logger,
	}
}

// countParam reads the optional ?count= query parameter. Zero means
// "use the endpoint default".
func countParam(r *http.Request) int {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// PlaceImages handles GET /images/places/{placeName}.
func (h *Handler) PlaceImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ImageHandler").Start(r.Context(), "PlaceImages", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/images/places/{placeName}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "PlaceImages"))

	placeName := chi.URLParam(r, "placeName")
	if placeName == "" {
		l.ErrorContext(ctx, "Place name is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Place name is required")
		return
	}

	records := h.imageService.GetPlaceImages(ctx, placeName, countParam(r))
	api.WriteJSONResponse(w, r, http.StatusOK, records)
}

// StateImages handles GET /images/states/{stateName}.
func (h *Handler) StateImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ImageHandler").Start(r.Context(), "StateImages", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/images/states/{stateName}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "StateImages"))

	stateName := chi.URLParam(r, "stateName")
	if stateName == "" {
		l.ErrorContext(ctx, "State name is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "State name is required")
		return
	}

	records := h.imageService.GetStateImages(ctx, stateName, countParam(r))
	api.WriteJSONResponse(w, r, http.StatusOK, records)
}

// CategoryImages handles GET /images/categories/{category}.
func (h *Handler) CategoryImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ImageHandler").Start(r.Context(), "CategoryImages", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/images/categories/{category}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "CategoryImages"))

	category := chi.URLParam(r, "category")
	if category == "" {
		l.ErrorContext(ctx, "Category is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Category is required")
		return
	}

	records := h.imageService.GetCategoryImages(ctx, category, countParam(r))
	api.WriteJSONResponse(w, r, http.StatusOK, records)
}

// BackgroundImages handles GET /images/background.
func (h *Handler) BackgroundImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ImageHandler").Start(r.Context(), "BackgroundImages", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/images/background"),
	))
	defer span.End()

	records := h.imageService.GetBackgroundImages(ctx, countParam(r))
	api.WriteJSONResponse(w, r, http.StatusOK, records)
}

// ClearCache handles POST /images/cache/clear.
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ImageHandler").Start(r.Context(), "ClearCache", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/images/cache/clear"),
	))
	defer span.End()

	h.imageService.ClearCache(ctx)
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{"status": "cache cleared"})
}
