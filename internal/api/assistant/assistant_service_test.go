package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
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

func TestChat_ReturnsModelReply(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("Varkala has a beautiful cliff beach.", nil).Once()

	reply := svc.Chat(context.Background(), "Tell me about Varkala", "")

	assert.Equal(t, "Varkala has a beautiful cliff beach.", reply)
}

func TestChat_IncludesContextInPrompt(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Context: planning a Kerala trip") &&
			strings.Contains(prompt, "User: what about houseboats?")
	}), mock.Anything).Return("Book one in Alleppey.", nil).Once()

	reply := svc.Chat(context.Background(), "what about houseboats?", "planning a Kerala trip")

	assert.Equal(t, "Book one in Alleppey.", reply)
	ai.AssertExpectations(t)
}

func TestChat_TransportErrorReturnsApology(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("model unavailable")).Once()

	reply := svc.Chat(context.Background(), "hello", "")

	assert.Equal(t, chatFallbackReply, reply)
}

func TestChat_BlankReplyReturnsRetryMessage(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("  \n ", nil).Once()

	reply := svc.Chat(context.Background(), "hello", "")

	assert.Equal(t, chatEmptyReply, reply)
}

func TestGetDestinationInfo_ParsesStructuredReply(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	raw := "```json\n" + `{
		"bestTime": "November to February",
		"attractions": ["Virupaksha Temple", "Vittala Temple"],
		"budgetEstimate": {"budget": 4000, "midRange": 9000, "luxury": 20000},
		"cuisine": ["South Indian thali"],
		"transportation": "Auto rickshaws and rented bicycles"
	}` + "\n```"
	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(raw, nil).Once()

	info, err := svc.GetDestinationInfo(context.Background(), "Hampi")

	require.NoError(t, err)
	assert.Equal(t, "November to February", info.BestTime)
	assert.Equal(t, types.StringList{"Virupaksha Temple", "Vittala Temple"}, info.Attractions)
	assert.Equal(t, 9000.0, info.BudgetEstimate.MidRange)
	assert.Equal(t, "Auto rickshaws and rented bicycles", info.Transportation)
}

func TestGetDestinationInfo_TransportErrorWrapsSentinel(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("model unavailable")).Once()

	info, err := svc.GetDestinationInfo(context.Background(), "Hampi")

	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, ErrInfoUnavailable)
	assert.Contains(t, err.Error(), "Hampi")
}

func TestGetDestinationInfo_UnparsableReplyDegrades(t *testing.T) {
	ai := new(MockTextGenerator)
	svc := newTestService(ai)

	raw := strings.Repeat("Hampi is a wonderful place to visit. ", 10)
	ai.On("GenerateText", mock.Anything, mock.Anything, mock.Anything).Return(raw, nil).Once()

	info, err := svc.GetDestinationInfo(context.Background(), "Hampi")

	require.NoError(t, err)
	assert.Equal(t, "October to March", info.BestTime)
	assert.Equal(t, types.StringList{"Information available on request"}, info.Attractions)
	assert.Equal(t, 5000.0, info.BudgetEstimate.Budget)
	assert.Equal(t, 12000.0, info.BudgetEstimate.MidRange)
	assert.Equal(t, 25000.0, info.BudgetEstimate.Luxury)
	assert.Equal(t, types.StringList{"Local specialties"}, info.Cuisine)
	assert.Len(t, info.Transportation, 200)
	assert.Equal(t, raw[:200], info.Transportation)
}
