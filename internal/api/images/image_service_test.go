package images

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

type MockPhotoSearcher struct {
	mock.Mock
}

func (m *MockPhotoSearcher) SearchPhotos(ctx context.Context, query string, perPage int, orientation string) ([]types.ImageRecord, error) {
	args := m.Called(ctx, query, perPage, orientation)
	var records []types.ImageRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]types.ImageRecord)
	}
	return records, args.Error(1)
}

func newTestService(searcher PhotoSearcher) *ServiceImpl {
	return NewServiceImpl(searcher, NewCache(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func samplePhotos(n int) []types.ImageRecord {
	records := make([]types.ImageRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, types.ImageRecord{
			ID: "abc123",
			URLs: types.ImageURLs{
				Small:   "https://images.unsplash.com/abc123?w=400",
				Regular: "https://images.unsplash.com/abc123?w=800",
				Full:    "https://images.unsplash.com/abc123?w=1200",
			},
			Alt:          "A temple at dusk",
			Photographer: "Test Photographer",
		})
	}
	return records
}

func TestGetPlaceImages_UsesCuratedQuery(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything,
		"Hampi Karnataka UNESCO World Heritage Vijayanagara ruins", 3, "landscape").
		Return(samplePhotos(3), nil).Once()

	records := svc.GetPlaceImages(ctx, "Hampi", 3)

	require.Len(t, records, 3)
	searcher.AssertExpectations(t)
}

func TestGetPlaceImages_UnknownPlaceFallsBackToGenericQuery(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, "Nowhereville India tourism", 3, "landscape").
		Return(samplePhotos(1), nil).Once()

	records := svc.GetPlaceImages(ctx, "Nowhereville", 3)

	require.Len(t, records, 1)
	searcher.AssertExpectations(t)
}

func TestGetPlaceImages_SecondCallServedFromCache(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 3, "landscape").
		Return(samplePhotos(2), nil).Once()

	first := svc.GetPlaceImages(ctx, "Munnar", 3)
	second := svc.GetPlaceImages(ctx, "Munnar", 3)

	assert.Equal(t, first, second)
	searcher.AssertNumberOfCalls(t, "SearchPhotos", 1)
}

func TestGetPlaceImages_DifferentCountMissesCache(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 3, "landscape").
		Return(samplePhotos(3), nil).Once()
	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 5, "landscape").
		Return(samplePhotos(5), nil).Once()

	svc.GetPlaceImages(ctx, "Munnar", 3)
	svc.GetPlaceImages(ctx, "Munnar", 5)

	searcher.AssertNumberOfCalls(t, "SearchPhotos", 2)
}

func TestClearCache_ForcesRefetch(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 3, "landscape").
		Return(samplePhotos(2), nil).Twice()

	svc.GetPlaceImages(ctx, "Kochi", 3)
	svc.ClearCache(ctx)
	svc.GetPlaceImages(ctx, "Kochi", 3)

	searcher.AssertNumberOfCalls(t, "SearchPhotos", 2)
}

func TestGetPlaceImages_SearchErrorReturnsFallbacks(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 3, "landscape").
		Return(nil, errors.New("upstream down")).Once()

	records := svc.GetPlaceImages(ctx, "Goa", 3)

	require.Len(t, records, 3)
	assert.Equal(t, "fallback_0", records[0].ID)
	assert.Equal(t, "fallback_1", records[1].ID)
	assert.Equal(t, "Unsplash", records[0].Photographer)
	assert.Contains(t, records[0].URLs.Small, "w=400&h=300")
}

func TestGetPlaceImages_FallbackNotCached(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 3, "landscape").
		Return(nil, errors.New("upstream down")).Once()
	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 3, "landscape").
		Return(samplePhotos(3), nil).Once()

	first := svc.GetPlaceImages(ctx, "Goa", 3)
	second := svc.GetPlaceImages(ctx, "Goa", 3)

	assert.Equal(t, "fallback_0", first[0].ID)
	assert.Equal(t, "abc123", second[0].ID)
	searcher.AssertNumberOfCalls(t, "SearchPhotos", 2)
}

func TestGetPlaceImages_EmptyResultIsCached(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, mock.Anything, 3, "landscape").
		Return([]types.ImageRecord{}, nil).Once()

	first := svc.GetPlaceImages(ctx, "Obscure Hamlet", 3)
	second := svc.GetPlaceImages(ctx, "Obscure Hamlet", 3)

	assert.Empty(t, first)
	assert.Empty(t, second)
	searcher.AssertNumberOfCalls(t, "SearchPhotos", 1)
}

func TestGetStateImages_AppendsLandscapeSuffix(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, "Kerala india tourism landscape", 1, "landscape").
		Return(samplePhotos(1), nil).Once()

	records := svc.GetStateImages(ctx, "Kerala", 0)

	require.Len(t, records, 1)
	searcher.AssertExpectations(t)
}

func TestGetCategoryImages_AppendsTourismSuffix(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, "beaches india tourism", 1, "landscape").
		Return(samplePhotos(1), nil).Once()

	records := svc.GetCategoryImages(ctx, "beaches", 0)

	require.Len(t, records, 1)
	searcher.AssertExpectations(t)
}

func TestGetBackgroundImages_UsesFixedQuery(t *testing.T) {
	searcher := new(MockPhotoSearcher)
	svc := newTestService(searcher)
	ctx := context.Background()

	searcher.On("SearchPhotos", mock.Anything, "india tourism landscape beautiful", 1, "landscape").
		Return(samplePhotos(1), nil).Once()

	records := svc.GetBackgroundImages(ctx, 0)

	require.Len(t, records, 1)
	searcher.AssertExpectations(t)
}

func TestFallbackImages_CyclesFixedSet(t *testing.T) {
	records := FallbackImages(7)

	require.Len(t, records, 7)
	// IDs are positional, URLs cycle through the five fixed photos.
	assert.Equal(t, "fallback_0", records[0].ID)
	assert.Equal(t, "fallback_6", records[6].ID)
	assert.Contains(t, records[5].URLs.Regular, "photo-1506905925346-21bda4d32df4")
	assert.Contains(t, records[0].URLs.Full, "w=1200&h=800")
}
