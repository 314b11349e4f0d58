package itinerary

import (
	"fmt"
	"strings"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

const plannerPersona = "You are a travel planning expert specializing in Indian destinations. Provide practical, budget-conscious itineraries with accurate cost estimates in Indian Rupees."

func buildItineraryPrompt(req types.ItineraryRequest) string {
	return fmt.Sprintf(`Create a detailed travel itinerary for %s from %s to %s.

    Requirements:
    - Budget: ₹%s for %d travelers
    - Interests: %s
    - Provide day-by-day activities with realistic costs
    - Include practical tips and recommendations
    - Focus on Indian destinations and local experiences

    IMPORTANT: Respond ONLY with valid JSON in this exact format:
    {
      "days": [
        {
          "day": 1,
          "title": "Arrival and City Exploration",
          "activities": [
            "Arrive at airport and check into hotel",
            "Visit local landmark",
            "Try local cuisine"
          ],
          "estimatedCost": 5000,
          "tips": "Book airport transfer in advance"
        }
      ],
      "totalEstimatedCost": 15000,
      "generalTips": [
        "Carry cash for local markets",
        "Book accommodations in advance"
      ]
    }`, req.Destination, req.StartDate, req.EndDate,
		formatAmount(req.Budget), req.Travelers, strings.Join(req.Interests, ", "))
}
