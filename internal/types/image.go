package types

// ImageURLs holds the three resolution variants Unsplash serves, ascending.
type ImageURLs struct {
	Small   string `json:"small"`
	Regular string `json:"regular"`
	Full    string `json:"full"`
}

// ImageRecord is the uniform shape the image service returns regardless of
// whether the photo came from Unsplash or the fallback set.
type ImageRecord struct {
	ID           string    `json:"id"`
	URLs         ImageURLs `json:"urls"`
	Alt          string    `json:"alt"`
	Photographer string    `json:"photographer"`
}
