package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizedSearchQuery(t *testing.T) {
	tests := []struct {
		name      string
		placeName string
		want      string
	}{
		{
			name:      "curated Karnataka place",
			placeName: "Hampi",
			want:      "Hampi Karnataka UNESCO World Heritage Vijayanagara ruins",
		},
		{
			name:      "curated Andhra Pradesh place",
			placeName: "Araku Valley",
			want:      "Araku Valley Andhra Pradesh coffee plantation hills",
		},
		{
			name:      "curated Rajasthan place with qualified name",
			placeName: "Hawa Mahal, Jaipur (Rajasthan)",
			want:      "Hawa Mahal Jaipur Rajasthan pink city landmark",
		},
		{
			name:      "curated Uttar Pradesh place",
			placeName: "Taj Mahal",
			want:      "Taj Mahal Agra Uttar Pradesh UNESCO World Heritage white marble mausoleum",
		},
		{
			name:      "unknown place falls back to generic query",
			placeName: "Shillong",
			want:      "Shillong India tourism",
		},
		{
			name:      "lookup is case sensitive",
			placeName: "hampi",
			want:      "hampi India tourism",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OptimizedSearchQuery(tt.placeName))
		})
	}
}

func TestStateAndCategoryQueries(t *testing.T) {
	assert.Equal(t, "Goa india tourism landscape", stateSearchQuery("Goa"))
	assert.Equal(t, "temples india tourism", categorySearchQuery("temples"))
	assert.Equal(t, "india tourism landscape beautiful", backgroundSearchQuery)
}
