package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ItineraryRequestsTotal  metric.Int64Counter
	ItineraryFallbacksTotal metric.Int64Counter
	ChatRequestsTotal       metric.Int64Counter
	ImageCacheHitsTotal     metric.Int64Counter
	ImageFallbacksTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, using the
// globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("sahyaatra-api")
		m := &AppMetrics{}
		var err error

		m.ItineraryRequestsTotal, err = meter.Int64Counter(
			"itinerary_requests_total",
			metric.WithDescription("Total number of itinerary generation requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Failed to create itinerary_requests_total counter: %v", err)
		}

		m.ItineraryFallbacksTotal, err = meter.Int64Counter(
			"itinerary_fallbacks_total",
			metric.WithDescription("Itinerary requests served from the synthesized fallback"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Failed to create itinerary_fallbacks_total counter: %v", err)
		}

		m.ChatRequestsTotal, err = meter.Int64Counter(
			"chat_requests_total",
			metric.WithDescription("Total number of assistant chat requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Failed to create chat_requests_total counter: %v", err)
		}

		m.ImageCacheHitsTotal, err = meter.Int64Counter(
			"image_cache_hits_total",
			metric.WithDescription("Image lookups served from the in-process cache"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Failed to create image_cache_hits_total counter: %v", err)
		}

		m.ImageFallbacksTotal, err = meter.Int64Counter(
			"image_fallbacks_total",
			metric.WithDescription("Image lookups served from the static fallback set"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Failed to create image_fallbacks_total counter: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics, or nil when InitAppMetrics has not
// run (as in tests).
func Get() *AppMetrics {
	return appMetrics
}
