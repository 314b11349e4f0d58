package types

// BudgetEstimate is a three-tier cost estimate for roughly three days,
// in Indian Rupees.
type BudgetEstimate struct {
	Budget   float64 `json:"budget"`
	MidRange float64 `json:"midRange"`
	Luxury   float64 `json:"luxury"`
}

// DestinationInfo summarises a destination for the info assistant.
type DestinationInfo struct {
	BestTime       string         `json:"bestTime"`
	Attractions    StringList     `json:"attractions"`
	BudgetEstimate BudgetEstimate `json:"budgetEstimate"`
	Cuisine        StringList     `json:"cuisine"`
	Transportation string         `json:"transportation"`
}

// DestinationOverview bundles the info card with a strip of photos for the
// destination detail page.
type DestinationOverview struct {
	Destination string          `json:"destination"`
	Info        DestinationInfo `json:"info"`
	Images      []ImageRecord   `json:"images"`
}
