package itinerary

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var enumerationMarker = regexp.MustCompile(`^\d+\.?\s*`)

func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	// Remove markdown code block markers
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")

	return strings.TrimSpace(response)
}

// extractJSONBlock returns the outermost {...} span, matching the greedy
// first-brace-to-last-brace extraction the itinerary schema expects.
func extractJSONBlock(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}

// nonBlankLines splits raw model output into trimmed, non-empty lines.
func nonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// floorShare splits an amount across n slots, rounded down to whole rupees.
func floorShare(amount float64, n int) float64 {
	if n <= 0 {
		n = 1
	}
	return math.Floor(amount / float64(n))
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
