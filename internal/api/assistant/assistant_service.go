package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/sahyaatra/sahyaatra-api/app/observability/metrics"
	"github.com/sahyaatra/sahyaatra-api/internal/api/generative"
	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

const (
	chatTemperature = 0.7
	chatMaxTokens   = 500

	infoTemperature = 0.3
	infoMaxTokens   = 1024

	// Degraded-result fields when the model answers but not in JSON.
	degradedBestTime       = "October to March"
	degradedAttraction     = "Information available on request"
	degradedCuisine        = "Local specialties"
	degradedTransportChars = 200

	chatFallbackReply = "I'm experiencing some technical difficulties. Please try again later or use the platform's other features to plan your trip."
	chatEmptyReply    = "I'm sorry, I couldn't process your request. Please try again."
)

// ErrInfoUnavailable is the single error GetDestinationInfo surfaces for
// transport or model failures.
var ErrInfoUnavailable = errors.New("failed to get destination information")

var _ Service = (*ServiceImpl)(nil)

// Service is the single-turn assistant. Chat never fails outward;
// GetDestinationInfo surfaces ErrInfoUnavailable.
type Service interface {
	Chat(ctx context.Context, message, chatContext string) string
	GetDestinationInfo(ctx context.Context, destination string) (*types.DestinationInfo, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	ai     generative.TextGenerator
}

func NewServiceImpl(ai generative.TextGenerator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		ai:     ai,
	}
}

// Chat answers a single user message. Any multi-turn context is assembled by
// the caller and passed in chatContext; no history is kept here.
func (s *ServiceImpl) Chat(ctx context.Context, message, chatContext string) string {
	ctx, span := otel.Tracer("AssistantService").Start(ctx, "Chat", trace.WithAttributes(
		attribute.Int("chat.message_length", len(message)),
	))
	defer span.End()

	if m := metrics.Get(); m != nil {
		m.ChatRequestsTotal.Add(ctx, 1)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](chatTemperature),
		MaxOutputTokens: chatMaxTokens,
	}
	reply, err := s.ai.GenerateText(ctx, buildChatPrompt(message, chatContext), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Chat call failed")
		s.logger.ErrorContext(ctx, "Chat generation failed, returning canned reply", slog.Any("error", err))
		return chatFallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		return chatEmptyReply
	}
	span.SetStatus(codes.Ok, "Chat reply generated")
	return reply
}

// GetDestinationInfo fetches the destination info card. Unparsable model
// output degrades into placeholders with the raw text truncated into the
// transportation field; call failures surface as ErrInfoUnavailable.
func (s *ServiceImpl) GetDestinationInfo(ctx context.Context, destination string) (*types.DestinationInfo, error) {
	ctx, span := otel.Tracer("AssistantService").Start(ctx, "GetDestinationInfo", trace.WithAttributes(
		attribute.String("destination", destination),
	))
	defer span.End()

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](infoTemperature),
		MaxOutputTokens: infoMaxTokens,
	}
	raw, err := s.ai.GenerateText(ctx, buildDestinationInfoPrompt(destination), config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Destination info call failed")
		s.logger.ErrorContext(ctx, "Destination info generation failed",
			slog.String("destination", destination), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %s", ErrInfoUnavailable, destination)
	}

	var info types.DestinationInfo
	if err := json.Unmarshal([]byte(extractJSONBlock(cleanJSONResponse(raw))), &info); err != nil {
		s.logger.WarnContext(ctx, "Destination info not valid JSON, returning degraded result",
			slog.String("destination", destination), slog.Any("error", err))
		return degradedInfo(raw), nil
	}

	span.SetStatus(codes.Ok, "Destination info generated")
	return &info, nil
}

func degradedInfo(raw string) *types.DestinationInfo {
	transport := raw
	if len(transport) > degradedTransportChars {
		transport = transport[:degradedTransportChars]
	}
	return &types.DestinationInfo{
		BestTime:    degradedBestTime,
		Attractions: types.StringList{degradedAttraction},
		BudgetEstimate: types.BudgetEstimate{
			Budget:   5000,
			MidRange: 12000,
			Luxury:   25000,
		},
		Cuisine:        types.StringList{degradedCuisine},
		Transportation: transport,
	}
}

func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}

func extractJSONBlock(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}
