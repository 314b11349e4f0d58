package types

import (
	"time"

	"github.com/google/uuid"
)

// Trip is a posted travel plan other users can join.
type Trip struct {
	ID           uuid.UUID  `json:"id"`
	CreatorID    uuid.UUID  `json:"creator_id"`
	Destination  string     `json:"destination"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Budget       float64    `json:"budget"`
	MaxTravelers int        `json:"max_travelers"`
	Description  *string    `json:"description,omitempty"`
	Interests    []string   `json:"interests"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Participants int        `json:"participants"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// CreateTripRequest is the payload for posting a new trip.
type CreateTripRequest struct {
	Destination  string   `json:"destination"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Budget       float64  `json:"budget"`
	MaxTravelers int      `json:"max_travelers"`
	Description  *string  `json:"description,omitempty"`
	Interests    []string `json:"interests"`
	ImageURL     *string  `json:"image_url,omitempty"`
}

// TripFilter narrows ListTrips results.
type TripFilter struct {
	Destination string
	Interest    string
	Page        int
	PageSize    int
}

// PaginatedTripsResponse wraps a trips page with its total count.
type PaginatedTripsResponse struct {
	Trips        []Trip `json:"trips"`
	TotalRecords int    `json:"total_records"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

// TripMessage is one entry in a trip's companion chat.
type TripMessage struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TripBudgetSummary breaks a trip budget down for the budget view.
type TripBudgetSummary struct {
	TripID       uuid.UUID `json:"trip_id"`
	Total        float64   `json:"total"`
	Days         int       `json:"days"`
	PerDay       float64   `json:"per_day"`
	MaxTravelers int       `json:"max_travelers"`
	PerPerson    float64   `json:"per_person"`
}
