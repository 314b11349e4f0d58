package types

import "encoding/json"

// ItineraryRequest carries the trip parameters an itinerary is generated from.
// Dates use the YYYY-MM-DD wire format.
type ItineraryRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Budget      float64  `json:"budget"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
}

// ItineraryDay is a single day of a generated itinerary.
type ItineraryDay struct {
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	Activities    StringList `json:"activities"`
	EstimatedCost float64    `json:"estimatedCost"`
	Tips          string     `json:"tips"`
}

// Itinerary is the shape every generation path resolves to,
// whether the model cooperated or not.
type Itinerary struct {
	Days               []ItineraryDay `json:"days"`
	TotalEstimatedCost float64        `json:"totalEstimatedCost"`
	GeneralTips        StringList     `json:"generalTips"`
}

// StringList accepts either a JSON array of strings or a lone string.
// Models frequently return "activities": "..." instead of a list.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one == "" {
		*s = nil
		return nil
	}
	*s = StringList{one}
	return nil
}
