package images

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/sahyaatra/sahyaatra-api/app/observability/metrics"
	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

const (
	defaultPlaceCount      = 3
	defaultStateCount      = 1
	defaultCategoryCount   = 1
	defaultBackgroundCount = 1

	landscapeOrientation = "landscape"
)

// Service exposes photo retrieval for the frontend. Lookups never fail from
// the caller's perspective: a broken upstream degrades to the curated
// fallback set instead of an error.
type Service interface {
	GetPlaceImages(ctx context.Context, placeName string, count int) []types.ImageRecord
	GetStateImages(ctx context.Context, stateName string, count int) []types.ImageRecord
	GetCategoryImages(ctx context.Context, category string, count int) []types.ImageRecord
	GetBackgroundImages(ctx context.Context, count int) []types.ImageRecord
	ClearCache(ctx context.Context)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger   *slog.Logger
	searcher PhotoSearcher
	cache    *Cache
}

func NewServiceImpl(searcher PhotoSearcher, cache *Cache, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		searcher: searcher,
		cache:    cache,
	}
}

func (s *ServiceImpl) GetPlaceImages(ctx context.Context, placeName string, count int) []types.ImageRecord {
	if count <= 0 {
		count = defaultPlaceCount
	}
	return s.fetch(ctx, cacheKey("place", placeName, count), OptimizedSearchQuery(placeName), count)
}

func (s *ServiceImpl) GetStateImages(ctx context.Context, stateName string, count int) []types.ImageRecord {
	if count <= 0 {
		count = defaultStateCount
	}
	return s.fetch(ctx, cacheKey("state", stateName, count), stateSearchQuery(stateName), count)
}

func (s *ServiceImpl) GetCategoryImages(ctx context.Context, category string, count int) []types.ImageRecord {
	if count <= 0 {
		count = defaultCategoryCount
	}
	return s.fetch(ctx, cacheKey("category", category, count), categorySearchQuery(category), count)
}

func (s *ServiceImpl) GetBackgroundImages(ctx context.Context, count int) []types.ImageRecord {
	if count <= 0 {
		count = defaultBackgroundCount
	}
	return s.fetch(ctx, fmt.Sprintf("background_%d", count), backgroundSearchQuery, count)
}

// ClearCache drops every cached result. The frontend calls this when the
// user switches states so stale imagery from the previous state never shows.
func (s *ServiceImpl) ClearCache(ctx context.Context) {
	s.logger.InfoContext(ctx, "Clearing image cache")
	s.cache.Clear()
}

// fetch is the shared read-through path. Upstream results are cached even
// when empty; fallback results are NOT cached so a recovered upstream is
// retried on the next request.
func (s *ServiceImpl) fetch(ctx context.Context, key, query string, count int) []types.ImageRecord {
	ctx, span := otel.Tracer("ImageService").Start(ctx, "FetchImages")
	defer span.End()
	span.SetAttributes(
		attribute.String("image.query", query),
		attribute.Int("image.count", count),
	)

	if cached, ok := s.cache.Get(key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		span.SetStatus(codes.Ok, "cache hit")
		if m := metrics.Get(); m != nil {
			m.ImageCacheHitsTotal.Add(ctx, 1)
		}
		return cached
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	records, err := s.searcher.SearchPhotos(ctx, query, count, landscapeOrientation)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "photo search failed")
		s.logger.WarnContext(ctx, "Photo search failed, serving fallback images",
			slog.String("query", query), slog.Any("error", err))
		if m := metrics.Get(); m != nil {
			m.ImageFallbacksTotal.Add(ctx, 1)
		}
		return FallbackImages(count)
	}

	s.cache.Set(key, records)
	span.SetStatus(codes.Ok, "photos fetched")
	return records
}
