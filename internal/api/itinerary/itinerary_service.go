package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

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
	generationTemperature = 0.7
	generationMaxTokens   = 2048

	defaultFallbackDays = 3
	heuristicMaxLines   = 5
	dateLayout          = "2006-01-02"
)

var _ Service = (*ServiceImpl)(nil)

// Service generates itineraries. GenerateItinerary never fails outward:
// every failure mode resolves to a well-formed itinerary.
type Service interface {
	GenerateItinerary(ctx context.Context, req types.ItineraryRequest) *types.Itinerary
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

// GenerateItinerary walks the recovery ladder: structured parse of the model
// output, then heuristic line extraction, then a synthesized itinerary when
// the call itself failed.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.ItineraryRequest) *types.Itinerary {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("itinerary.destination", req.Destination),
		attribute.Int("itinerary.travelers", req.Travelers),
	))
	defer span.End()

	if m := metrics.Get(); m != nil {
		m.ItineraryRequestsTotal.Add(ctx, 1)
	}

	prompt := fmt.Sprintf("%s\n\n%s", plannerPersona, buildItineraryPrompt(req))
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](generationTemperature),
		MaxOutputTokens: generationMaxTokens,
	}

	raw, err := s.ai.GenerateText(ctx, prompt, config)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "AI call failed, synthesizing itinerary")
		s.logger.ErrorContext(ctx, "Itinerary generation call failed, using fallback",
			slog.String("destination", req.Destination), slog.Any("error", err))
		if m := metrics.Get(); m != nil {
			m.ItineraryFallbacksTotal.Add(ctx, 1)
		}
		return s.fallbackItinerary(req)
	}

	it := s.recoverItinerary(ctx, raw, req)
	span.SetStatus(codes.Ok, "Itinerary generated")
	return it
}

// recoverItinerary is the structured tier with the heuristic tier behind it.
func (s *ServiceImpl) recoverItinerary(ctx context.Context, raw string, req types.ItineraryRequest) *types.Itinerary {
	block := extractJSONBlock(cleanJSONResponse(raw))

	var it types.Itinerary
	if err := json.Unmarshal([]byte(block), &it); err != nil {
		s.logger.WarnContext(ctx, "Itinerary JSON parse failed, extracting lines",
			slog.String("destination", req.Destination), slog.Any("error", err))
		return s.heuristicItinerary(raw, req)
	}

	// A parsed object without a days array is returned unshaped. Callers of
	// the original API rely on this exact ordering, so it stays.
	if len(it.Days) == 0 {
		return &it
	}

	dayCount := len(it.Days)
	for i := range it.Days {
		day := &it.Days[i]
		if day.Day == 0 {
			day.Day = i + 1
		}
		if day.Title == "" {
			day.Title = fmt.Sprintf("Day %d", i+1)
		}
		if len(day.Activities) == 0 {
			day.Activities = types.StringList{"Activity details not available"}
		}
		if day.EstimatedCost == 0 {
			day.EstimatedCost = floorShare(req.Budget, dayCount)
		}
		if day.Tips == "" {
			day.Tips = "Enjoy your day!"
		}
	}
	if it.TotalEstimatedCost == 0 {
		it.TotalEstimatedCost = req.Budget
	}
	if len(it.GeneralTips) == 0 {
		it.GeneralTips = types.StringList{"Have a great trip!"}
	}
	return &it
}

// heuristicItinerary salvages a single day from free-form model text.
func (s *ServiceImpl) heuristicItinerary(raw string, req types.ItineraryRequest) *types.Itinerary {
	lines := nonBlankLines(raw)
	if len(lines) > heuristicMaxLines {
		lines = lines[:heuristicMaxLines]
	}
	activities := make(types.StringList, 0, len(lines))
	for _, line := range lines {
		activities = append(activities, strings.TrimSpace(enumerationMarker.ReplaceAllString(line, "")))
	}
	if len(activities) == 0 {
		activities = types.StringList{"AI generated itinerary - please check the full response for details"}
	}

	return &types.Itinerary{
		Days: []types.ItineraryDay{
			{
				Day:           1,
				Title:         "AI Generated Itinerary",
				Activities:    activities,
				EstimatedCost: floorShare(req.Budget, 3),
				Tips:          "AI response received. Please review the detailed itinerary above.",
			},
		},
		TotalEstimatedCost: req.Budget,
		GeneralTips: types.StringList{
			"AI response received",
			"Please review the detailed itinerary",
			"Contact support if you need assistance",
		},
	}
}

// fallbackItinerary synthesizes a full itinerary when the upstream call
// failed entirely.
func (s *ServiceImpl) fallbackItinerary(req types.ItineraryRequest) *types.Itinerary {
	dayCount := dateSpanDays(req.StartDate, req.EndDate)
	costPerDay := floorShare(req.Budget, dayCount)

	days := make([]types.ItineraryDay, dayCount)
	for i := range days {
		title := fmt.Sprintf("Day %d Activities", i+1)
		tips := "Carry cash for local markets and keep emergency contacts handy"
		firstActivity := fmt.Sprintf("Explore %s", req.Destination)
		lastActivity := "Relax and explore more"

		if i == 0 {
			title = "Arrival and Initial Exploration"
			tips = "Book your accommodation in advance and arrange airport transfer"
			firstActivity = "Arrive and check into accommodation"
		}
		if i == dayCount-1 && i != 0 {
			title = "Departure Day"
			tips = "Ensure you have all your belongings and confirm departure time"
		}
		if i == dayCount-1 {
			lastActivity = "Check out and depart"
		}

		days[i] = types.ItineraryDay{
			Day:   i + 1,
			Title: title,
			Activities: types.StringList{
				firstActivity,
				fmt.Sprintf("Visit local attractions in %s", req.Destination),
				"Enjoy local cuisine and culture",
				lastActivity,
			},
			EstimatedCost: costPerDay,
			Tips:          tips,
		}
	}

	return &types.Itinerary{
		Days:               days,
		TotalEstimatedCost: req.Budget,
		GeneralTips: types.StringList{
			fmt.Sprintf("Budget: ₹%s for %d travelers", formatAmount(req.Budget), req.Travelers),
			fmt.Sprintf("Interests: %s", strings.Join(req.Interests, ", ")),
			"Carry cash for local markets and small vendors",
			"Book accommodations and transportation in advance",
			"Respect local customs and traditions",
			"Keep emergency contacts and important documents safe",
		},
	}
}

// dateSpanDays counts whole days between the request dates, clamping
// invalid or non-positive spans to the default.
func dateSpanDays(startDate, endDate string) int {
	start, errStart := time.Parse(dateLayout, startDate)
	end, errEnd := time.Parse(dateLayout, endDate)
	if errStart != nil || errEnd != nil {
		return defaultFallbackDays
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days <= 0 {
		return defaultFallbackDays
	}
	return days
}
