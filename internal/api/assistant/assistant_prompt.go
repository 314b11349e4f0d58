package assistant

import (
	"fmt"
	"strings"
)

const chatPersona = `You are sahyaatra AI, a helpful travel assistant for India. You help users with:
    - Travel planning and recommendations
    - Budget advice for Indian destinations
    - Cultural insights and local tips
    - Safety and practical travel information
    - Connecting with travel companions

    Keep responses helpful, concise, and focused on Indian travel. If asked about booking or payments, explain that users should use the platform's trip posting feature to connect with travel buddies.`

const infoPersona = "You are a travel expert specializing in Indian destinations. Provide accurate, practical information."

func buildChatPrompt(message, context string) string {
	var b strings.Builder
	b.WriteString(chatPersona)
	if context != "" {
		b.WriteString(fmt.Sprintf("\n\n    Context: %s", context))
	}
	b.WriteString(fmt.Sprintf("\n\nUser: %s", message))
	return b.String()
}

func buildDestinationInfoPrompt(destination string) string {
	return fmt.Sprintf(`%s

Provide key information about %s as a travel destination in India. Include:
    - Best time to visit
    - Top 5 attractions
    - Approximate budget for 3 days (budget, mid-range, luxury)
    - Local cuisine highlights
    - Transportation tips

    Format as JSON:
    {
      "bestTime": "Month range",
      "attractions": ["Attraction 1", "Attraction 2", ...],
      "budgetEstimate": {
        "budget": 5000,
        "midRange": 12000,
        "luxury": 25000
      },
      "cuisine": ["Dish 1", "Dish 2", ...],
      "transportation": "Transportation tips"
    }`, infoPersona, destination)
}
