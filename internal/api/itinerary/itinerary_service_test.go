package itinerary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, prompt, config)
	return args.String(0), args.Error(1)
}

func newTestService(ai *MockTextGenerator) *ServiceImpl {
	return NewServiceImpl(ai, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func baseRequest() types.ItineraryRequest {
	return types.ItineraryRequest{
		Destination: "Hampi",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-04",
		Budget:      30000,
		Travelers:   2,
		Interests:   []string{"heritage", "photography"},
	}
}

func TestGenerateItinerary_ParsesFencedJSON(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	raw := "```json\n" + `{
		"days": [
			{"day": 1, "title": "Temple Trail", "activities": ["Virupaksha Temple", "Hemakuta Hill"], "estimatedCost": 4000, "tips": "Start early"},
			{"day": 2, "title": "Boulder Country", "activities": ["Matanga Hill sunrise"], "estimatedCost": 3500, "tips": "Carry water"}
		],
		"totalEstimatedCost": 7500,
		"generalTips": ["Hire a local guide"]
	}` + "\n```"
	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(raw, nil).Once()

	it := svc.GenerateItinerary(context.Background(), baseRequest())

	require.Len(t, it.Days, 2)
	assert.Equal(t, "Temple Trail", it.Days[0].Title)
	assert.Equal(t, types.StringList{"Virupaksha Temple", "Hemakuta Hill"}, it.Days[0].Activities)
	assert.Equal(t, 4000.0, it.Days[0].EstimatedCost)
	assert.Equal(t, 7500.0, it.TotalEstimatedCost)
	assert.Equal(t, types.StringList{"Hire a local guide"}, it.GeneralTips)
}

func TestGenerateItinerary_BackfillsMissingDayFields(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	raw := `{"days": [{"activities": []}, {"title": "Second Day"}]}`
	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(raw, nil).Once()

	req := baseRequest()
	it := svc.GenerateItinerary(context.Background(), req)

	require.Len(t, it.Days, 2)
	assert.Equal(t, 1, it.Days[0].Day)
	assert.Equal(t, "Day 1", it.Days[0].Title)
	assert.Equal(t, types.StringList{"Activity details not available"}, it.Days[0].Activities)
	assert.Equal(t, 15000.0, it.Days[0].EstimatedCost) // floor(30000/2)
	assert.Equal(t, "Enjoy your day!", it.Days[0].Tips)
	assert.Equal(t, "Second Day", it.Days[1].Title)
	assert.Equal(t, req.Budget, it.TotalEstimatedCost)
	assert.Equal(t, types.StringList{"Have a great trip!"}, it.GeneralTips)
}

func TestGenerateItinerary_ParsedObjectWithoutDaysIsReturnedUnshaped(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	raw := `{"totalEstimatedCost": 999}`
	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(raw, nil).Once()

	it := svc.GenerateItinerary(context.Background(), baseRequest())

	assert.Empty(t, it.Days)
	assert.Equal(t, 999.0, it.TotalEstimatedCost)
	assert.Empty(t, it.GeneralTips)
}

func TestGenerateItinerary_FreeformTextBecomesSingleDay(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	raw := "1. Visit the fort\n2. Walk the bazaar\n\n3. Sunset point\n4. Dinner by the river\n5. Night market\n6. Extra line beyond the cut"
	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(raw, nil).Once()

	it := svc.GenerateItinerary(context.Background(), baseRequest())

	require.Len(t, it.Days, 1)
	day := it.Days[0]
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, "AI Generated Itinerary", day.Title)
	require.Len(t, day.Activities, 5)
	assert.Equal(t, "Visit the fort", day.Activities[0])
	assert.Equal(t, "Night market", day.Activities[4])
	assert.Equal(t, 10000.0, day.EstimatedCost) // floor(30000/3)
	assert.Equal(t, 30000.0, it.TotalEstimatedCost)
	assert.NotEmpty(t, it.GeneralTips)
}

func TestGenerateItinerary_EmptyTextStillYieldsPlaceholderDay(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return("   \n  \n", nil).Once()

	it := svc.GenerateItinerary(context.Background(), baseRequest())

	require.Len(t, it.Days, 1)
	assert.Equal(t, types.StringList{"AI generated itinerary - please check the full response for details"}, it.Days[0].Activities)
}

func TestGenerateItinerary_TransportFailureSynthesizesFromDates(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("deadline exceeded")).Once()

	req := baseRequest() // 2024-01-01 to 2024-01-04: three whole days
	it := svc.GenerateItinerary(context.Background(), req)

	require.Len(t, it.Days, 3)
	assert.Equal(t, "Arrival and Initial Exploration", it.Days[0].Title)
	assert.Equal(t, "Day 2 Activities", it.Days[1].Title)
	assert.Equal(t, "Departure Day", it.Days[2].Title)
	assert.Equal(t, "Arrive and check into accommodation", it.Days[0].Activities[0])
	assert.Equal(t, "Check out and depart", it.Days[2].Activities[3])
	for _, day := range it.Days {
		assert.Equal(t, 10000.0, day.EstimatedCost) // floor(30000/3)
		assert.Len(t, day.Activities, 4)
	}
	assert.Equal(t, req.Budget, it.TotalEstimatedCost)
	assert.Contains(t, it.GeneralTips, "Budget: ₹30000 for 2 travelers")
	assert.Contains(t, it.GeneralTips, "Interests: heritage, photography")
}

func TestGenerateItinerary_InvalidDatesClampToThreeDays(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("boom")).Twice()

	req := baseRequest()
	req.StartDate = "not-a-date"
	it := svc.GenerateItinerary(context.Background(), req)
	assert.Len(t, it.Days, 3)

	// End before start clamps the same way.
	req = baseRequest()
	req.StartDate = "2024-01-04"
	req.EndDate = "2024-01-01"
	it = svc.GenerateItinerary(context.Background(), req)
	assert.Len(t, it.Days, 3)
}

func TestGenerateItinerary_SingleDayTripGetsArrivalAndDeparture(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("boom")).Once()

	req := baseRequest()
	req.StartDate = "2024-01-01"
	req.EndDate = "2024-01-02"
	it := svc.GenerateItinerary(context.Background(), req)

	require.Len(t, it.Days, 1)
	assert.Equal(t, "Arrival and Initial Exploration", it.Days[0].Title)
	assert.Equal(t, "Check out and depart", it.Days[0].Activities[3])
}

func TestGenerateItinerary_AllPathsYieldUsableItinerary(t *testing.T) {
	responses := []struct {
		name string
		raw  string
		err  error
	}{
		{"valid json", `{"days":[{"day":1,"title":"T","activities":["a"],"estimatedCost":1,"tips":"t"}],"totalEstimatedCost":1,"generalTips":["g"]}`, nil},
		{"free text", "some plan\nanother line", nil},
		{"transport error", "", errors.New("down")},
	}

	for _, tc := range responses {
		t.Run(tc.name, func(t *testing.T) {
			ai := new(MockTextGenerator)
			svc := newTestService(ai)
			ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(tc.raw, tc.err).Once()

			it := svc.GenerateItinerary(context.Background(), baseRequest())

			require.NotEmpty(t, it.Days)
			for _, day := range it.Days {
				assert.NotEmpty(t, day.Activities)
			}
			assert.NotEmpty(t, it.GeneralTips)
		})
	}
}

func TestCleanJSONResponse(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONResponse("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONResponse(`{"a":1}`))
}

func TestExtractJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONBlock(`Here you go: {"a":1} enjoy`))
	assert.Equal(t, "no braces here", extractJSONBlock("no braces here"))
}

func TestFloorShare(t *testing.T) {
	assert.Equal(t, 3333.0, floorShare(10000, 3))
	assert.Equal(t, 10000.0, floorShare(10000, 0))
}
