package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sahyaatra/sahyaatra-api/internal/types"
)

const (
	defaultBaseURL = "https://api.unsplash.com"
	clientTimeout  = 10 * time.Second
)

// PhotoSearcher is the outbound photo-search contract the image service
// programs against.
type PhotoSearcher interface {
	SearchPhotos(ctx context.Context, query string, perPage int, orientation string) ([]types.ImageRecord, error)
}

var _ PhotoSearcher = (*Client)(nil)

// Client talks to the Unsplash search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
	logger     *slog.Logger
}

func NewClient(baseURL, accessKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: clientTimeout},
		baseURL:    baseURL,
		accessKey:  accessKey,
		logger:     logger,
	}
}

type searchResponse struct {
	Results []searchPhoto `json:"results"`
}

type searchPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Small   string `json:"small"`
		Regular string `json:"regular"`
		Full    string `json:"full"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
	AltDescription string `json:"alt_description"`
	User           struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

// SearchPhotos issues one paginated search request and shapes the results.
func (c *Client) SearchPhotos(ctx context.Context, query string, perPage int, orientation string) ([]types.ImageRecord, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("orientation", orientation)

	endpoint := fmt.Sprintf("%s/search/photos?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build photo search request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Client-ID %s", c.accessKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photo search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("photo search returned HTTP %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode photo search response: %w", err)
	}

	records := make([]types.ImageRecord, 0, len(payload.Results))
	for _, photo := range payload.Results {
		alt := photo.AltDescription
		if alt == "" {
			alt = query
		}
		records = append(records, types.ImageRecord{
			ID: photo.ID,
			URLs: types.ImageURLs{
				Small:   photo.URLs.Small,
				Regular: photo.URLs.Regular,
				Full:    photo.URLs.Full,
			},
			Alt:          alt,
			Photographer: photo.User.Name,
		})
	}
	c.logger.DebugContext(ctx, "Photo search completed",
		slog.String("query", query), slog.Int("results", len(records)))
	return records, nil
}

// Reliable Unsplash photo IDs used when the API is unreachable.
var fallbackImageIDs = []string{
	"photo-1506905925346-21bda4d32df4",
	"photo-1578662996442-48f60103fc96",
	"photo-1587474260584-136574881ed9",
	"photo-1590736969955-71cc94901144",
	"photo-1587474260584-136574881ed9",
}

// FallbackImages builds a deterministic image list by cycling the fallback
// set, one record per requested count.
func FallbackImages(count int) []types.ImageRecord {
	records := make([]types.ImageRecord, 0, count)
	for i := 0; i < count; i++ {
		imageID := fallbackImageIDs[i%len(fallbackImageIDs)]
		records = append(records, types.ImageRecord{
			ID: fmt.Sprintf("fallback_%d", i),
			URLs: types.ImageURLs{
				Small:   fmt.Sprintf("https://images.unsplash.com/%s?w=400&h=300&fit=crop&crop=center&q=80&auto=format&ixlib=rb-4.0.3", imageID),
				Regular: fmt.Sprintf("https://images.unsplash.com/%s?w=800&h=600&fit=crop&crop=center&q=80&auto=format&ixlib=rb-4.0.3", imageID),
				Full:    fmt.Sprintf("https://images.unsplash.com/%s?w=1200&h=800&fit=crop&crop=center&q=80&auto=format&ixlib=rb-4.0.3", imageID),
			},
			Alt:          "Beautiful India landscape",
			Photographer: "Unsplash",
		})
	}
	return records
}
