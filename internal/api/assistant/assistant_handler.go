package assistant

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/sahyaatra/sahyaatra-api/internal/api"
	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

const overviewImageCount = 5

// ImageFinder is the slice of the image service the overview endpoint needs.
type ImageFinder interface {
	GetPlaceImages(ctx context.Context, placeName string, count int) []types.ImageRecord
}

type Handler struct {
	assistantService Service
	images           ImageFinder
	logger           *slog.Logger
}

func NewHandler(assistantService Service, images ImageFinder, logger *slog.Logger) *Handler {
	return &Handler{
		assistantService: assistantService,
		images:           images,
		logger:           logger,
	}
}

type chatRequest struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat handles POST /ai/chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AssistantHandler").Start(r.Context(), "Chat", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/ai/chat"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Chat"))

	var req chatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Message == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message is required")
		return
	}

	reply := h.assistantService.Chat(ctx, req.Message, req.Context)
	api.WriteJSONResponse(w, r, http.StatusOK, chatResponse{Reply: reply})
}

// DestinationInfo handles GET /ai/destinations/{destination}.
func (h *Handler) DestinationInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AssistantHandler").Start(r.Context(), "DestinationInfo", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/ai/destinations/{destination}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "DestinationInfo"))

	destination := chi.URLParam(r, "destination")
	if destination == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Destination is required")
		return
	}

	info, err := h.assistantService.GetDestinationInfo(ctx, destination)
	if err != nil {
		l.ErrorContext(ctx, "Destination info unavailable", slog.String("destination", destination), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Failed to get destination information")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, info)
}

// DestinationOverview handles GET /ai/destinations/{destination}/overview,
// fetching the info card and a photo strip concurrently.
func (h *Handler) DestinationOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AssistantHandler").Start(r.Context(), "DestinationOverview", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/ai/destinations/{destination}/overview"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "DestinationOverview"))

	destination := chi.URLParam(r, "destination")
	if destination == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Destination is required")
		return
	}

	var (
		info   *types.DestinationInfo
		images []types.ImageRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		info, err = h.assistantService.GetDestinationInfo(gctx, destination)
		return err
	})
	g.Go(func() error {
		// Image retrieval absorbs its own failures.
		images = h.images.GetPlaceImages(gctx, destination, overviewImageCount)
		return nil
	})
	if err := g.Wait(); err != nil {
		l.ErrorContext(ctx, "Destination overview unavailable", slog.String("destination", destination), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadGateway, "Failed to get destination information")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.DestinationOverview{
		Destination: destination,
		Info:        *info,
		Images:      images,
	})
}
